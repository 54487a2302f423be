package stocks

import (
	"cmp"
	"slices"

	"github.com/guregu/null/v6"
)

// TickerValue is a statistic attached to a ticker.
type TickerValue struct {
	Ticker string
	Value  null.Float
}

// Volatility returns the sample standard deviation of every ticker's closing prices,
// sorted by decreasing value. Ties keep the column order, missing values come last.
func Volatility(t *PriceTable) []TickerValue {
	res := make([]TickerValue, len(t.tickers))
	for j, ticker := range t.tickers {
		res[j] = TickerValue{Ticker: ticker, Value: sampleStdDev(observed(t.columns[j]))}
	}
	slices.SortStableFunc(res, func(a, b TickerValue) int {
		switch {
		case !a.Value.Valid && !b.Value.Valid:
			return 0
		case !a.Value.Valid:
			return 1
		case !b.Value.Valid:
			return -1
		}
		return cmp.Compare(b.Value.Float64, a.Value.Float64)
	})
	return res
}
