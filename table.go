package stocks

import (
	"math"
	"slices"

	"github.com/etnz/stocks/date"
)

// PriceTable is the wide price table: rows are unique ascending dates, columns are tickers.
// A missing observation is stored as NaN. A PriceTable is never modified once built.
type PriceTable struct {
	dates   []date.Date
	tickers []string
	columns [][]float64 // columns[j][i] is the close of tickers[j] on dates[i]
}

// Dates returns the row index.
func (t *PriceTable) Dates() []date.Date { return slices.Clone(t.dates) }

// Tickers returns the column index.
func (t *PriceTable) Tickers() []string { return slices.Clone(t.tickers) }

// Len returns the number of rows (dates).
func (t *PriceTable) Len() int { return len(t.dates) }

// Width returns the number of columns (tickers).
func (t *PriceTable) Width() int { return len(t.tickers) }

// IsEmpty reports whether the table has no rows or no columns.
func (t *PriceTable) IsEmpty() bool { return t == nil || len(t.dates) == 0 || len(t.tickers) == 0 }

// Range returns the first and last dates of the table.
func (t *PriceTable) Range() date.Range {
	if len(t.dates) == 0 {
		return date.Range{}
	}
	return date.NewRange(t.dates[0], t.dates[len(t.dates)-1])
}

// Column returns a copy of the j-th column, NaN where the price is missing.
func (t *PriceTable) Column(j int) []float64 { return slices.Clone(t.columns[j]) }

// ColumnOf returns the column of a ticker.
func (t *PriceTable) ColumnOf(ticker string) ([]float64, bool) {
	j := slices.Index(t.tickers, ticker)
	if j < 0 {
		return nil, false
	}
	return t.Column(j), true
}

// At returns the close of ticker j on date i and whether it is present.
func (t *PriceTable) At(i, j int) (float64, bool) {
	v := t.columns[j][i]
	return v, !math.IsNaN(v)
}

// Cells returns the number of observations in the table.
func (t *PriceTable) Cells() int {
	n := 0
	for _, col := range t.columns {
		n += len(observed(col))
	}
	return n
}

// observed returns the non missing values of a column, in date order.
func observed(col []float64) []float64 {
	values := make([]float64, 0, len(col))
	for _, v := range col {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	return values
}
