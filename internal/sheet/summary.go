package sheet

import (
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"secview/domain/school"
)

// Summarize builds the display summary of the Valor column. Cells that do
// not parse as numbers are skipped; an all-text column yields a zero
// summary.
func Summarize(rows []school.Row) school.Summary {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v, ok := parseValor(row.Valor); ok {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return school.Summary{}
	}

	sum, _ := stats.Sum(values)
	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	return school.Summary{
		NumericCount: len(values),
		Sum:          sum,
		Mean:         mean,
		Min:          min,
		Max:          max,
	}
}

// parseValor accepts plain floats plus the Brazilian formatting the source
// sheets use: an optional R$ prefix, dots as thousand separators and a
// comma as the decimal separator.
func parseValor(cell string) (float64, bool) {
	v := strings.TrimSpace(cell)
	v = strings.TrimPrefix(v, "R$")
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}

	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.ReplaceAll(v, ",", ".")
	}

	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
