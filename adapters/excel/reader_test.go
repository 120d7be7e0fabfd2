package excel

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadDataXLSX(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"NTE", "Municipio", "Cod.SEC", "Nome Escola", "Valor"},
		{"NTE 26", "Salvador", "12345", "Escola A", 1500},
		{"NTE 03", "Feira de Santana", "67890", "Escola B", 2300},
	})

	data, err := NewDataReader("planilha.xlsx").ReadData(content)
	require.NoError(t, err)

	require.Equal(t, []string{"NTE", "Municipio", "Cod.SEC", "Nome Escola", "Valor"}, data.Headers)
	require.Len(t, data.Rows, 2)
	require.Equal(t, "Salvador", data.Rows[0]["Municipio"])
	require.Equal(t, "67890", data.Rows[1]["Cod.SEC"])
}

func TestReadDataXLSXHeaderOnly(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"NTE", "Municipio", "Cod.SEC", "Nome Escola", "Valor"},
	})

	data, err := NewDataReader("planilha.xlsx").ReadData(content)
	require.NoError(t, err)
	require.Len(t, data.Rows, 0)
}

func TestReadDataXLSXShortRows(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"NTE", "Municipio", "Cod.SEC", "Nome Escola", "Valor"},
		{"NTE 26", "Salvador"},
	})

	data, err := NewDataReader("planilha.xlsx").ReadData(content)
	require.NoError(t, err)
	require.Len(t, data.Rows, 1)
	require.Equal(t, "Salvador", data.Rows[0]["Municipio"])
	require.Equal(t, "", data.Rows[0]["Valor"])
}

func TestReadDataCSV(t *testing.T) {
	content := []byte("NTE,Municipio,Cod.SEC,Nome Escola,Valor\nNTE 26,Salvador,12345,Escola A,1500\n")

	data, err := NewDataReader("planilha.csv").ReadData(content)
	require.NoError(t, err)
	require.Equal(t, []string{"NTE", "Municipio", "Cod.SEC", "Nome Escola", "Valor"}, data.Headers)
	require.Len(t, data.Rows, 1)
	require.Equal(t, "Escola A", data.Rows[0]["Nome Escola"])
}

func TestReadDataErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
	}{
		{name: "empty content", filename: "planilha.xlsx", content: nil},
		{name: "not a workbook", filename: "planilha.xlsx", content: []byte("definitely not a zip archive")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataReader(tt.filename).ReadData(tt.content)
			require.Error(t, err)
		})
	}
}

func TestSupportedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"planilha.xlsx", true},
		{"PLANILHA.XLSX", true},
		{"dados.csv", true},
		{"dados.xls", false},
		{"notas.pdf", false},
		{"semextensao", false},
	}

	for _, tt := range tests {
		if got := SupportedExtension(tt.filename); got != tt.want {
			t.Errorf("SupportedExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
