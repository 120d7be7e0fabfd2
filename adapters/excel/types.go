package excel

// RawRowData represents one decoded row as header → cell pairs.
type RawRowData map[string]string

// SheetData is the decoded content of an uploaded spreadsheet.
type SheetData struct {
	Headers []string
	Rows    []RawRowData
}
