package chart

import (
	"github.com/etnz/stocks"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const barWidth = 24 // points

// Volatility draws one bar per ticker in the given order, usually by decreasing volatility.
func Volatility(values []stocks.TickerValue) (*Chart, error) {
	p := newPlot("Volatility of Closing Prices", "Ticker", "Standard Deviation")
	if err := addBars(p, "volatility", values); err != nil {
		return nil, err
	}
	return &Chart{Name: "volatility", Plot: p}, nil
}

// PercentChange draws one bar per ticker with its change over the period.
func PercentChange(values []stocks.TickerValue) (*Chart, error) {
	p := newPlot("Percentage Change in Closing Prices", "Ticker", "Percentage Change (%)")
	if err := addBars(p, "percentage change", values); err != nil {
		return nil, err
	}
	return &Chart{Name: "percentage_change", Plot: p}, nil
}

// addBars adds a bar chart of values to p, with ticker names on the X axis.
// Missing values have no bar and no tick.
func addBars(p *plot.Plot, stat string, values []stocks.TickerValue) error {
	names := make([]string, 0, len(values))
	heights := make(plotter.Values, 0, len(values))
	for _, v := range values {
		if !v.Value.Valid {
			log.Warn().Str("ticker", v.Ticker).Str("stat", stat).Msg("missing value left out of the chart")
			continue
		}
		names = append(names, v.Ticker)
		heights = append(heights, v.Value.Float64)
	}
	if len(heights) == 0 {
		return nil
	}

	bars, err := plotter.NewBarChart(heights, vg.Points(barWidth))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(plotter.NewGrid(), bars)
	p.NominalX(names...)
	return nil
}
