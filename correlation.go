package stocks

import (
	"math"
	"slices"

	"github.com/guregu/null/v6"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix holds the Pearson correlation of every pair of tickers.
type CorrelationMatrix struct {
	tickers []string
	m       *mat.SymDense // NaN where the coefficient is undefined
}

// Tickers returns the matrix order.
func (c *CorrelationMatrix) Tickers() []string { return slices.Clone(c.tickers) }

// Len returns the number of tickers.
func (c *CorrelationMatrix) Len() int { return len(c.tickers) }

// At returns the coefficient between the i-th and j-th tickers.
func (c *CorrelationMatrix) At(i, j int) null.Float { return nullFloat(c.m.At(i, j)) }

// Get returns the coefficient between two tickers by name.
func (c *CorrelationMatrix) Get(a, b string) null.Float {
	i, j := slices.Index(c.tickers, a), slices.Index(c.tickers, b)
	if i < 0 || j < 0 {
		return null.Float{}
	}
	return c.At(i, j)
}

// Correlation computes the Pearson correlation between every pair of tickers, over the dates
// where both have a price. The coefficient is undefined when fewer than two dates are shared or
// when one of the series is constant over them. The diagonal is 1 for every ticker with at least
// two observations.
func Correlation(t *PriceTable) *CorrelationMatrix {
	n := len(t.tickers)
	m := mat.NewSymDense(n, nil)
	for i := range n {
		for j := range i + 1 {
			if i == j {
				if len(observed(t.columns[i])) >= 2 {
					m.SetSym(i, i, 1)
				} else {
					m.SetSym(i, i, math.NaN())
				}
				continue
			}
			m.SetSym(i, j, pairwiseCorrelation(t.columns[i], t.columns[j]))
		}
	}
	return &CorrelationMatrix{tickers: slices.Clone(t.tickers), m: m}
}

func pairwiseCorrelation(a, b []float64) float64 {
	var xs, ys []float64
	for k := range a {
		if math.IsNaN(a[k]) || math.IsNaN(b[k]) {
			continue
		}
		xs, ys = append(xs, a[k]), append(ys, b[k])
	}
	if len(xs) < 2 || isConstant(xs) || isConstant(ys) {
		return math.NaN()
	}
	// Rounding may push a perfect correlation slightly outside [-1, 1].
	return max(-1, min(1, stat.Correlation(xs, ys, nil)))
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
