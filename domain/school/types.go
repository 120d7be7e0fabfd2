// Package school holds the domain model for SEC school-value sheets.
package school

// Column names expected in the header row of an uploaded sheet.
const (
	ColNTE        = "NTE"
	ColMunicipio  = "Municipio"
	ColCodSEC     = "Cod.SEC"
	ColNomeEscola = "Nome Escola"
	ColValor      = "Valor"
)

// RequiredColumns returns the expected columns in display order.
func RequiredColumns() []string {
	return []string{ColNTE, ColMunicipio, ColCodSEC, ColNomeEscola, ColValor}
}

// Row is one spreadsheet row. Cells stay as strings; Valor in particular
// may hold a number or free text depending on the source sheet.
type Row struct {
	NTE        string
	Municipio  string
	CodSEC     string
	NomeEscola string
	Valor      string
}

// Cell returns the row's value for a required column name.
func (r Row) Cell(column string) string {
	switch column {
	case ColNTE:
		return r.NTE
	case ColMunicipio:
		return r.Municipio
	case ColCodSEC:
		return r.CodSEC
	case ColNomeEscola:
		return r.NomeEscola
	case ColValor:
		return r.Valor
	}
	return ""
}

// MissingColumns returns the required columns absent from headers,
// in display order.
func MissingColumns(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range RequiredColumns() {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// Summary describes the numeric cells of the Valor column. Display only;
// rows whose Valor does not parse as a number are simply not counted.
type Summary struct {
	NumericCount int
	Sum          float64
	Mean         float64
	Min          float64
	Max          float64
}
