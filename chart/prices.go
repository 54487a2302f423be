package chart

import (
	"math"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/date"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// ClosingPrices draws one line per ticker: closing price over time.
// Missing prices are skipped, the line joins the surrounding observations.
func ClosingPrices(t *stocks.PriceTable) (*Chart, error) {
	p := newPlot("Time Series of Closing Prices", "Date", "Closing Price")
	p.X.Tick.Marker = plot.TimeTicks{Format: date.DateFormat}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	dates := t.Dates()
	for j, ticker := range t.Tickers() {
		col := t.Column(j)
		xys := make(plotter.XYs, 0, len(col))
		for i, v := range col {
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(dates[i].Time().Unix()), Y: v})
		}
		if len(xys) == 0 {
			log.Warn().Str("ticker", ticker).Msg("no closing price to draw")
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(j)
		p.Add(line)
		p.Legend.Add(ticker, line)
	}
	return &Chart{Name: "closing_prices", Plot: p}, nil
}
