package chart

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/stocks"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `Date,Ticker,Close
2024-01-01,A,100
2024-01-02,A,110
2024-01-03,A,105
2024-01-01,B,50
2024-01-02,B,45
2024-01-03,B,47
2024-01-02,C,10
`

func analysis(t *testing.T) *stocks.Analysis {
	t.Helper()
	raw, err := stocks.DecodeCSV(strings.NewReader(input), 0)
	require.NoError(t, err)
	table, err := stocks.Reshape(raw, stocks.DuplicateError)
	require.NoError(t, err)
	a, err := stocks.Analyze(table)
	require.NoError(t, err)
	return a
}

func TestCharts(t *testing.T) {
	charts, err := Charts(analysis(t))
	require.NoError(t, err)

	tests := []struct {
		name, title, x, y string
	}{
		{"closing_prices", "Time Series of Closing Prices", "Date", "Closing Price"},
		{"volatility", "Volatility of Closing Prices", "Ticker", "Standard Deviation"},
		{"correlation", "Correlation Matrix of Closing Prices", "Ticker", "Ticker"},
		{"percentage_change", "Percentage Change in Closing Prices", "Ticker", "Percentage Change (%)"},
		{"risk_return", "Risk vs. Return Analysis", "Risk (Standard Deviation)", "Average Daily Return"},
	}
	require.Len(t, charts, len(tests))
	for i, test := range tests {
		c := charts[i]
		assert.Equal(t, test.name, c.Name)
		assert.Equal(t, test.title, c.Title())
		assert.Equal(t, test.x, c.Plot.X.Label.Text, "%s X label", c.Name)
		assert.Equal(t, test.y, c.Plot.Y.Label.Text, "%s Y label", c.Name)
	}
}

func TestSaveAll(t *testing.T) {
	charts, err := Charts(analysis(t))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "charts")
	paths, err := SaveAll(context.Background(), dir, SVG, charts)
	require.NoError(t, err)
	require.Len(t, paths, len(charts))

	for i, path := range paths {
		assert.Equal(t, filepath.Join(dir, charts[i].Name+".svg"), path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "%s is empty", path)
	}
}

func TestSaveAllCanceled(t *testing.T) {
	charts, err := Charts(analysis(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SaveAll(ctx, t.TempDir(), PNG, charts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{"SVG", SVG, false},
		{"pdf", PDF, false},
		{"jpeg", JPG, false},
		{"gif", "", true},
	}
	for _, test := range tests {
		got, err := ParseFormat(test.input)
		if test.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", test.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}
}

func TestMissingValuesAreLeftOut(t *testing.T) {
	_, err := Volatility([]stocks.TickerValue{
		{Ticker: "A", Value: null.FloatFrom(2)},
		{Ticker: "B"},
	})
	assert.NoError(t, err)

	c, err := RiskReturn([]stocks.RiskReturn{{Ticker: "A", Return: null.FloatFrom(0.1)}})
	require.NoError(t, err)
	assert.Equal(t, "risk_return", c.Name)

	c, err = PercentChange(nil)
	require.NoError(t, err)
	assert.Equal(t, "percentage_change", c.Name)
}

func TestCorrelationGrid(t *testing.T) {
	a := analysis(t)
	grid := correlationGrid{a.Correlation}

	cols, rows := grid.Dims()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1.0, grid.Z(0, 0))
	assert.Equal(t, grid.Z(0, 1), grid.Z(1, 0))
	// C has a single observation.
	assert.True(t, math.IsNaN(grid.Z(2, 2)))
	assert.Equal(t, 2.0, grid.X(2))
}
