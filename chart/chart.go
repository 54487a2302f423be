// Package chart builds the charts of the stock report with gonum/plot.
//
// Every chart is built from a single statistic and does not depend on any other chart,
// so they can be built and saved in any order.
package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/stocks"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Default size of a saved chart.
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

// Format is the image format of a saved chart.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
	JPG Format = "jpg"
)

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, SVG, PDF, JPG:
		return f, nil
	case "jpeg":
		return JPG, nil
	default:
		return "", fmt.Errorf("unknown chart format: %q", s)
	}
}

// Chart is a plot ready to be saved, Name is used as the file name.
type Chart struct {
	Name string
	Plot *plot.Plot
}

// Title returns the title of the chart.
func (c *Chart) Title() string { return c.Plot.Title.Text }

// FileName returns the file name of the chart in a given format.
func (c *Chart) FileName(format Format) string { return c.Name + "." + string(format) }

// Save writes the chart in dir and returns the path of the file.
func (c *Chart) Save(dir string, format Format) (string, error) {
	path := filepath.Join(dir, c.FileName(format))
	if err := c.Plot.Save(Width, Height, path); err != nil {
		return "", fmt.Errorf("could not save chart %q: %w", c.Name, err)
	}
	return path, nil
}

// newPlot creates a plot with a title and axis labels.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// Charts builds the five charts of the report, in report order.
func Charts(a *stocks.Analysis) ([]*Chart, error) {
	builders := []func() (*Chart, error){
		func() (*Chart, error) { return ClosingPrices(a.Table) },
		func() (*Chart, error) { return Volatility(a.Volatility) },
		func() (*Chart, error) { return CorrelationHeatmap(a.Correlation) },
		func() (*Chart, error) { return PercentChange(a.PercentChange) },
		func() (*Chart, error) { return RiskReturn(a.RiskReturn) },
	}
	charts := make([]*Chart, 0, len(builders))
	for _, build := range builders {
		c, err := build()
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, nil
}

// SaveAll saves all charts in dir, concurrently. The returned paths are in the order of charts.
func SaveAll(ctx context.Context, dir string, format Format, charts []*Chart) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create chart directory %q: %w", dir, err)
	}
	paths := make([]string, len(charts))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range charts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := c.Save(dir, format)
			if err != nil {
				return err
			}
			log.Debug().Str("chart", c.Name).Str("file", path).Msg("chart saved")
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
