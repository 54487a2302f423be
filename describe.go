package stocks

import (
	"math"
	"slices"

	"github.com/guregu/null/v6"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Description holds the descriptive statistics of one ticker's closing prices.
// Statistics that cannot be computed from the available observations are not valid.
type Description struct {
	Ticker string
	Count  int
	Mean   null.Float
	Std    null.Float
	Min    null.Float
	Q25    null.Float
	Q50    null.Float
	Q75    null.Float
	Max    null.Float
}

// Describe computes count, mean, sample standard deviation, min, quartiles and max
// of every ticker column, over its non missing values.
func Describe(t *PriceTable) []Description {
	res := make([]Description, len(t.tickers))
	for j, ticker := range t.tickers {
		values := observed(t.columns[j])
		d := Description{Ticker: ticker, Count: len(values)}
		if len(values) > 0 {
			sorted := slices.Clone(values)
			slices.Sort(sorted)
			d.Mean = nullFloat(stat.Mean(values, nil))
			d.Min = nullFloat(floats.Min(values))
			d.Max = nullFloat(floats.Max(values))
			d.Q25 = nullFloat(quantile(sorted, 0.25))
			d.Q50 = nullFloat(quantile(sorted, 0.50))
			d.Q75 = nullFloat(quantile(sorted, 0.75))
		}
		d.Std = sampleStdDev(values)
		res[j] = d
	}
	return res
}

// quantile returns the p-quantile of sorted values, interpolating linearly between the
// two closest ranks: q = x[k] + (h-k)(x[k+1]-x[k]) with h = (n-1)p.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	k := int(math.Floor(h))
	if k >= n-1 {
		return sorted[n-1]
	}
	return sorted[k] + (h-float64(k))*(sorted[k+1]-sorted[k])
}

// sampleStdDev returns the N-1 standard deviation, not valid with fewer than 2 values.
func sampleStdDev(values []float64) null.Float {
	if len(values) < 2 {
		return null.Float{}
	}
	return nullFloat(stat.StdDev(values, nil))
}

// nullFloat turns NaN and infinities into a missing value.
func nullFloat(v float64) null.Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return null.Float{}
	}
	return null.FloatFrom(v)
}
