package sheet

import (
	"secview/adapters/excel"
	"secview/domain/school"
	"secview/internal/errors"
)

// parseAndValidate decodes an upload and checks the required columns.
// There is no partial acceptance: any failure leaves the row set empty.
func parseAndValidate(filename string, content []byte) ([]school.Row, school.Summary, error) {
	if len(content) == 0 {
		return nil, school.Summary{}, errors.EmptyFile(filename)
	}

	reader := excel.NewDataReader(filename)
	data, err := reader.ReadData(content)
	if err != nil {
		return nil, school.Summary{}, errors.ParseFailed(filename, err)
	}

	if missing := school.MissingColumns(data.Headers); len(missing) > 0 {
		return nil, school.Summary{}, errors.MissingColumns(missing)
	}

	rows := make([]school.Row, len(data.Rows))
	for i, raw := range data.Rows {
		rows[i] = school.Row{
			NTE:        raw[school.ColNTE],
			Municipio:  raw[school.ColMunicipio],
			CodSEC:     raw[school.ColCodSEC],
			NomeEscola: raw[school.ColNomeEscola],
			Valor:      raw[school.ColValor],
		}
	}

	return rows, Summarize(rows), nil
}

// userMessage maps pipeline errors to the string shown in the view.
func userMessage(err error) string {
	switch errors.GetCode(err) {
	case errors.CodeEmptyFile, errors.CodeParseFailed:
		return "The file is empty or could not be parsed. Please select a valid spreadsheet."
	case errors.CodeMissingColumns:
		return err.Error()
	default:
		return "Something went wrong while reading the file. Please try again."
	}
}
