package sheet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"secview/domain/school"
)

func TestParseValor(t *testing.T) {
	tests := []struct {
		cell string
		want float64
		ok   bool
	}{
		{"1500", 1500, true},
		{"1500.50", 1500.5, true},
		{"1.234,56", 1234.56, true},
		{"R$ 2.000,00", 2000, true},
		{"0", 0, true},
		{"", 0, false},
		{"isento", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseValor(tt.cell)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseValor(%q) = (%v, %v), want (%v, %v)", tt.cell, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSummarize(t *testing.T) {
	rows := []school.Row{
		{CodSEC: "1", Valor: "100"},
		{CodSEC: "2", Valor: "300"},
		{CodSEC: "3", Valor: "sem valor"},
		{CodSEC: "4", Valor: "200"},
	}

	summary := Summarize(rows)
	require.Equal(t, 3, summary.NumericCount)
	require.InDelta(t, 600, summary.Sum, 1e-9)
	require.InDelta(t, 200, summary.Mean, 1e-9)
	require.InDelta(t, 100, summary.Min, 1e-9)
	require.InDelta(t, 300, summary.Max, 1e-9)
}

func TestSummarizeAllText(t *testing.T) {
	rows := []school.Row{
		{CodSEC: "1", Valor: "isento"},
		{CodSEC: "2", Valor: ""},
	}

	summary := Summarize(rows)
	require.Equal(t, school.Summary{}, summary)
}
