package stocks

import (
	"math"

	"github.com/rs/zerolog/log"
)

// PercentChange returns, for every ticker in column order, the change in percent between its
// first and last available closing prices. The change is undefined when the first price is zero.
func PercentChange(t *PriceTable) []TickerValue {
	res := make([]TickerValue, len(t.tickers))
	for j, ticker := range t.tickers {
		res[j] = TickerValue{Ticker: ticker}
		values := observed(t.columns[j])
		if len(values) == 0 {
			continue
		}
		first, last := values[0], values[len(values)-1]
		if first == 0 {
			log.Warn().Str("ticker", ticker).Msg("first close price is zero, percentage change is undefined")
			continue
		}
		res[j].Value = nullFloat((last - first) / first * 100)
	}
	return res
}

// change returns the relative change from prev to cur, NaN when it is undefined.
func change(prev, cur float64) float64 {
	if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
		return math.NaN()
	}
	return (cur - prev) / prev
}
