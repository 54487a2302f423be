package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/etnz/stocks"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
)

// Blues goes from dark blue for -1 to white for +1.
var (
	darkBlue = color.RGBA{R: 8, G: 48, B: 107, A: 255}
	white    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// correlationGrid adapts a CorrelationMatrix to plotter.GridXYZ.
// Column c and row r are both ticker indexes.
type correlationGrid struct{ m *stocks.CorrelationMatrix }

func (g correlationGrid) Dims() (c, r int) { return g.m.Len(), g.m.Len() }
func (g correlationGrid) X(c int) float64  { return float64(c) }
func (g correlationGrid) Y(r int) float64  { return float64(r) }

func (g correlationGrid) Z(c, r int) float64 {
	v := g.m.At(r, c)
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// CorrelationHeatmap draws the correlation matrix as a ticker by ticker grid colored by
// coefficient, each cell labeled with its value. Undefined coefficients are left blank.
func CorrelationHeatmap(m *stocks.CorrelationMatrix) (*Chart, error) {
	p := newPlot("Correlation Matrix of Closing Prices", "Ticker", "Ticker")
	tickers := m.Tickers()
	if len(tickers) == 0 {
		return &Chart{Name: "correlation", Plot: p}, nil
	}

	cmap, err := moreland.NewLuminance([]color.Color{darkBlue, white})
	if err != nil {
		return nil, err
	}
	cmap.SetMin(-1)
	cmap.SetMax(1)

	grid := correlationGrid{m}
	heat := plotter.NewHeatMap(grid, cmap.Palette(255))
	heat.Min, heat.Max = -1, 1
	heat.NaN = color.Transparent
	p.Add(heat)

	var cells plotter.XYLabels
	var values []float64
	for r := range tickers {
		for c := range tickers {
			z := grid.Z(c, r)
			if math.IsNaN(z) {
				continue
			}
			cells.XYs = append(cells.XYs, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			cells.Labels = append(cells.Labels, fmt.Sprintf("%.2f", z))
			values = append(values, z)
		}
	}
	if len(cells.XYs) > 0 {
		labels, err := plotter.NewLabels(cells)
		if err != nil {
			return nil, err
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].XAlign = text.XCenter
			labels.TextStyle[i].YAlign = text.YCenter
			// Dark cells get a light label.
			if values[i] < 0 {
				labels.TextStyle[i].Color = white
			}
		}
		p.Add(labels)
	}

	p.NominalX(tickers...)
	p.NominalY(tickers...)
	return &Chart{Name: "correlation", Plot: p}, nil
}
