package sheet

import (
	"strings"

	"secview/domain/school"
)

// Filter returns the rows whose Cod.SEC cell contains query,
// case-insensitively. Only that column is searched; an empty query
// returns the full set. Order is preserved, so filtering is idempotent.
func Filter(rows []school.Row, query string) []school.Row {
	if query == "" {
		return rows
	}

	q := strings.ToLower(query)
	filtered := make([]school.Row, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.CodSEC), q) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
