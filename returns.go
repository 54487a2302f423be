package stocks

import (
	"math"
	"slices"

	"github.com/etnz/stocks/date"
	"github.com/guregu/null/v6"
	"gonum.org/v1/gonum/stat"
)

// DailyReturns is the table of day over day relative price changes.
// Only dates where every ticker with at least one return has a value are kept.
type DailyReturns struct {
	dates   []date.Date
	tickers []string
	columns [][]float64 // NaN only for tickers without any return
}

// Dates returns the dates kept in the table. A return is dated on the later day of its pair.
func (r *DailyReturns) Dates() []date.Date { return slices.Clone(r.dates) }

// Tickers returns the column order.
func (r *DailyReturns) Tickers() []string { return slices.Clone(r.tickers) }

// Len returns the number of kept dates.
func (r *DailyReturns) Len() int { return len(r.dates) }

// Column returns the returns of the j-th ticker.
func (r *DailyReturns) Column(j int) []float64 { return slices.Clone(r.columns[j]) }

// RiskReturn pairs the risk (standard deviation) and the average of a ticker's daily returns.
type RiskReturn struct {
	Ticker string
	Risk   null.Float
	Return null.Float
}

// Returns computes (p[t]-p[t-1])/p[t-1] for every pair of consecutive dates where both prices
// are present, then drops the dates where a return is missing. Tickers that have no return at
// all do not cause dates to be dropped, they are reported as missing.
//
// Unlike strict any-missing row dropping, a ticker with a single price never empties the table.
func Returns(t *PriceTable) *DailyReturns {
	raw := make([][]float64, len(t.tickers))
	empty := make([]bool, len(t.tickers))
	for j, col := range t.columns {
		raw[j] = make([]float64, 0, max(len(col)-1, 0))
		for i := 1; i < len(col); i++ {
			raw[j] = append(raw[j], change(col[i-1], col[i]))
		}
		empty[j] = len(observed(raw[j])) == 0
	}

	r := &DailyReturns{tickers: slices.Clone(t.tickers), columns: make([][]float64, len(t.tickers))}
	for i := 1; i < len(t.dates); i++ {
		complete := true
		for j := range raw {
			if !empty[j] && math.IsNaN(raw[j][i-1]) {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		r.dates = append(r.dates, t.dates[i])
		for j := range raw {
			r.columns[j] = append(r.columns[j], raw[j][i-1])
		}
	}
	return r
}

// RiskReturn returns the risk/return pair of every ticker in column order.
// The average needs one return, the risk two.
func (r *DailyReturns) RiskReturn() []RiskReturn {
	res := make([]RiskReturn, len(r.tickers))
	for j, ticker := range r.tickers {
		values := observed(r.columns[j])
		res[j] = RiskReturn{Ticker: ticker, Risk: sampleStdDev(values)}
		if len(values) > 0 {
			res[j].Return = nullFloat(stat.Mean(values, nil))
		}
	}
	return res
}
