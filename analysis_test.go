package stocks

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestScenario(t *testing.T) {
	a, err := Analyze(scenarioTable(t))
	require.NoError(t, err)

	// Percentage change A=+10%, B=-10%.
	require.Len(t, a.PercentChange, 2)
	assert.Equal(t, "A", a.PercentChange[0].Ticker)
	assert.InDelta(t, 10, a.PercentChange[0].Value.Float64, tolerance)
	assert.Equal(t, "B", a.PercentChange[1].Ticker)
	assert.InDelta(t, -10, a.PercentChange[1].Value.Float64, tolerance)

	// std(A)=std([100,110])≈7.07, std(B)=std([50,45])≈3.54.
	require.Len(t, a.Volatility, 2)
	assert.Equal(t, "A", a.Volatility[0].Ticker)
	assert.InDelta(t, 7.0710678118654755, a.Volatility[0].Value.Float64, tolerance)
	assert.Equal(t, "B", a.Volatility[1].Ticker)
	assert.InDelta(t, 3.5355339059327378, a.Volatility[1].Value.Float64, tolerance)

	// Perfectly anti correlated over 2 points.
	corr := a.Correlation.Get("A", "B")
	require.True(t, corr.Valid)
	assert.InDelta(t, -1, corr.Float64, tolerance)

	// One return per ticker: the average is known, the risk is not.
	require.Len(t, a.RiskReturn, 2)
	assert.InDelta(t, 0.1, a.RiskReturn[0].Return.Float64, tolerance)
	assert.False(t, a.RiskReturn[0].Risk.Valid)
	assert.InDelta(t, -0.1, a.RiskReturn[1].Return.Float64, tolerance)
	assert.False(t, a.RiskReturn[1].Risk.Valid)
}

func TestDescribe(t *testing.T) {
	pt := table(t,
		rec("2024-01-01", "A", 1),
		rec("2024-01-02", "A", 2),
		rec("2024-01-03", "A", 3),
		rec("2024-01-04", "A", 4),
		rec("2024-01-01", "B", 10),
	)
	d := Describe(pt)
	require.Len(t, d, 2)

	a := d[0]
	assert.Equal(t, "A", a.Ticker)
	assert.Equal(t, 4, a.Count)
	assert.InDelta(t, 2.5, a.Mean.Float64, tolerance)
	assert.InDelta(t, 1.2909944487358056, a.Std.Float64, tolerance)
	assert.InDelta(t, 1, a.Min.Float64, tolerance)
	assert.InDelta(t, 1.75, a.Q25.Float64, tolerance)
	assert.InDelta(t, 2.5, a.Q50.Float64, tolerance)
	assert.InDelta(t, 3.25, a.Q75.Float64, tolerance)
	assert.InDelta(t, 4, a.Max.Float64, tolerance)

	// A single observation has no standard deviation, but all the rest.
	b := d[1]
	assert.Equal(t, 1, b.Count)
	assert.False(t, b.Std.Valid)
	assert.True(t, b.Mean.Valid)
	assert.InDelta(t, 10, b.Q25.Float64, tolerance)
	assert.InDelta(t, 10, b.Max.Float64, tolerance)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.9, 4.6},
		{1, 5},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, quantile(sorted, test.p), tolerance, "quantile(%v)", test.p)
	}
	assert.True(t, math.IsNaN(quantile(nil, 0.5)))
}

func TestVolatilitySorted(t *testing.T) {
	pt := table(t,
		rec("2024-01-01", "LOW", 10), rec("2024-01-02", "LOW", 11),
		rec("2024-01-01", "HIGH", 10), rec("2024-01-02", "HIGH", 30),
		rec("2024-01-01", "ONE", 10),
		rec("2024-01-01", "TIE", 20), rec("2024-01-02", "TIE", 21),
	)
	v := Volatility(pt)

	var got []string
	for _, tv := range v {
		got = append(got, tv.Ticker)
	}
	// LOW and TIE have the same volatility and keep the column order, ONE is missing and last.
	assert.Equal(t, []string{"HIGH", "LOW", "TIE", "ONE"}, got)
	assert.False(t, v[3].Value.Valid)
	for i := 1; i < 3; i++ {
		assert.GreaterOrEqual(t, v[i-1].Value.Float64, v[i].Value.Float64)
	}
}

func TestVolatilitySingleTicker(t *testing.T) {
	pt := table(t, rec("2024-01-01", "A", 1), rec("2024-01-02", "A", 2))
	assert.Len(t, Volatility(pt), 1)
}

func TestCorrelationMatrix(t *testing.T) {
	pt := table(t,
		rec("2024-01-01", "A", 1), rec("2024-01-02", "A", 2), rec("2024-01-03", "A", 4), rec("2024-01-04", "A", 3),
		rec("2024-01-01", "B", 2), rec("2024-01-02", "B", 4), rec("2024-01-03", "B", 8), rec("2024-01-04", "B", 6),
		rec("2024-01-01", "C", 5), rec("2024-01-02", "C", 1), rec("2024-01-04", "C", 2),
		rec("2024-01-01", "D", 7), rec("2024-01-02", "D", 7), rec("2024-01-03", "D", 7),
		rec("2024-01-03", "E", 1),
	)
	c := Correlation(pt)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, c.Tickers())

	for i := range c.Len() {
		for j := range c.Len() {
			assert.Equal(t, c.At(i, j), c.At(j, i), "matrix is not symmetric at %d,%d", i, j)
		}
	}
	for i := range 4 {
		assert.InDelta(t, 1, c.At(i, i).Float64, tolerance, "diagonal %d", i)
	}
	// E has a single observation.
	assert.False(t, c.At(4, 4).Valid)
	assert.False(t, c.Get("A", "E").Valid)

	// B = 2A.
	assert.InDelta(t, 1, c.Get("A", "B").Float64, tolerance)
	// C is only compared on the dates it shares with A: (1,5) (2,1) (3,2).
	assert.InDelta(t, -0.720576692122892, c.Get("A", "C").Float64, tolerance)
	// D is constant.
	assert.False(t, c.Get("A", "D").Valid)
	assert.False(t, c.Get("A", "Z").Valid)
}

func TestPercentChange(t *testing.T) {
	pt := table(t,
		rec("2024-01-01", "FLAT", 42), rec("2024-01-02", "FLAT", 42), rec("2024-01-03", "FLAT", 42),
		rec("2024-01-02", "LATE", 50), rec("2024-01-03", "LATE", 75),
		rec("2024-01-01", "ZERO", 0), rec("2024-01-03", "ZERO", 5),
	)
	pc := PercentChange(pt)
	require.Len(t, pc, 3)

	assert.True(t, pc[0].Value.Valid)
	assert.Equal(t, 0.0, pc[0].Value.Float64)
	// First and last available values are used.
	assert.InDelta(t, 50, pc[1].Value.Float64, tolerance)
	// Division by zero is undefined.
	assert.False(t, pc[2].Value.Valid)
}

func TestReturns(t *testing.T) {
	pt := table(t,
		rec("2024-01-01", "A", 100), rec("2024-01-02", "A", 110), rec("2024-01-03", "A", 99), rec("2024-01-04", "A", 99),
		rec("2024-01-01", "B", 10), rec("2024-01-02", "B", 11), rec("2024-01-04", "B", 12),
		rec("2024-01-02", "C", 5),
	)
	r := Returns(pt)

	// 2024-01-03 has no price for B, so both the 01-03 and 01-04 returns of B are missing and
	// these dates are dropped. C has no return at all and does not drop anything.
	require.Equal(t, 1, r.Len())
	assert.Equal(t, "2024-01-02", r.Dates()[0].String())
	assert.InDelta(t, 0.1, r.Column(0)[0], tolerance)
	assert.InDelta(t, 0.1, r.Column(1)[0], tolerance)
	assert.True(t, math.IsNaN(r.Column(2)[0]))

	rr := r.RiskReturn()
	require.Len(t, rr, 3)
	assert.Equal(t, "C", rr[2].Ticker)
	assert.False(t, rr[2].Risk.Valid, "a ticker with one observation has no risk")
	assert.False(t, rr[2].Return.Valid, "a ticker with one observation has no return")
}

func TestRiskReturn(t *testing.T) {
	pt := table(t,
		rec("2024-01-01", "A", 100), rec("2024-01-02", "A", 110), rec("2024-01-03", "A", 121), rec("2024-01-04", "A", 108.9),
	)
	rr := Returns(pt).RiskReturn()
	require.Len(t, rr, 1)

	// Returns are 0.1, 0.1, -0.1.
	assert.InDelta(t, 0.1/3, rr[0].Return.Float64, tolerance)
	assert.InDelta(t, 0.11547005383792514, rr[0].Risk.Float64, tolerance)
}

func TestAnalyzeEmpty(t *testing.T) {
	_, err := Analyze(&PriceTable{})
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestRun(t *testing.T) {
	raw, a, err := Run(writeFile(t, "stocks.csv", scenarioCSV), Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, raw.Len())
	assert.Equal(t, 2, a.Table.Width())

	_, _, err = Run(writeFile(t, "dup.csv", scenarioCSV+"2024-01-02,B,1,2,3\n"), Options{})
	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr), "Run() error = %v want a StageError", err)
	assert.Equal(t, StageReshape, stageErr.Stage)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, a, err = Run(writeFile(t, "dup.csv", scenarioCSV+"2024-01-02,B,1,2,3\n"), Options{Duplicates: DuplicateKeepLast})
	require.NoError(t, err)
	b, _ := a.Table.ColumnOf("B")
	assert.Equal(t, []float64{50, 2}, b)

	_, _, err = Run("missing.csv", Options{})
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, StageLoad, stageErr.Stage)
	assert.ErrorIs(t, err, ErrFileNotFound)
}
