package chart

import (
	"github.com/etnz/stocks"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RiskReturn draws one labeled point per ticker: risk on X, average daily return on Y.
// There are no lines between points and no legend. Tickers with a missing risk or return are
// left out.
func RiskReturn(values []stocks.RiskReturn) (*Chart, error) {
	p := newPlot("Risk vs. Return Analysis", "Risk (Standard Deviation)", "Average Daily Return")
	p.Add(plotter.NewGrid())

	points := plotter.XYLabels{}
	for _, v := range values {
		if !v.Risk.Valid || !v.Return.Valid {
			log.Warn().Str("ticker", v.Ticker).Msg("missing risk or return, ticker left out of the chart")
			continue
		}
		points.XYs = append(points.XYs, plotter.XY{X: v.Risk.Float64, Y: v.Return.Float64})
		points.Labels = append(points.Labels, v.Ticker)
	}
	if len(points.XYs) == 0 {
		return &Chart{Name: "risk_return", Plot: p}, nil
	}

	scatter, err := plotter.NewScatter(points.XYs)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Color = plotutil.Color(0)

	labels, err := plotter.NewLabels(points)
	if err != nil {
		return nil, err
	}
	labels.Offset = vg.Point{Y: vg.Points(8)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
	}

	p.Add(scatter, labels)
	return &Chart{Name: "risk_return", Plot: p}, nil
}
