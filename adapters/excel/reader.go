// Package excel decodes uploaded .xlsx and .csv files into tabular data.
package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DataReader decodes spreadsheet content held in memory. The file type is
// chosen from the uploaded filename's extension; anything that is not .csv
// is treated as an Excel workbook.
type DataReader struct {
	filename string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for an uploaded file.
func NewDataReader(filename string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filename))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filename: filename, fileType: fileType}
}

// SupportedExtension reports whether filename carries an extension the
// reader knows how to decode.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".csv":
		return true
	}
	return false
}

// ReadData decodes the uploaded content. The first row is the header row;
// a file without one is an error, a file with only a header row yields an
// empty row set.
func (r *DataReader) ReadData(content []byte) (*SheetData, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("file %s is empty", r.filename)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData(content)
	case "xlsx":
		return r.readExcelData(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcelData reads the workbook's first sheet into structured format.
func (r *DataReader) readExcelData(content []byte) (*SheetData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheetName)
	}

	return r.processRows(rows)
}

// readCSVData reads CSV content into structured format.
func (r *DataReader) readCSVData(content []byte) (*SheetData, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV content: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV content has no header row")
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into SheetData. Cells beyond the
// header width are dropped; short rows leave the missing fields empty.
func (r *DataReader) processRows(rows [][]string) (*SheetData, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRowData, len(headers))

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s decoded (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &SheetData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
