package stocks

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Analysis gathers every statistic derived from one PriceTable.
type Analysis struct {
	Table         *PriceTable
	Descriptions  []Description
	Volatility    []TickerValue
	Correlation   *CorrelationMatrix
	PercentChange []TickerValue
	Returns       *DailyReturns
	RiskReturn    []RiskReturn
}

// Analyze computes all the statistics of the report over the same table.
func Analyze(t *PriceTable) (*Analysis, error) {
	if t.IsEmpty() {
		return nil, fmt.Errorf("%w: price table has no rows or no columns", ErrEmptyData)
	}
	a := &Analysis{
		Table:         t,
		Descriptions:  Describe(t),
		Volatility:    Volatility(t),
		Correlation:   Correlation(t),
		PercentChange: PercentChange(t),
		Returns:       Returns(t),
	}
	a.RiskReturn = a.Returns.RiskReturn()
	log.Debug().Int("tickers", t.Width()).Int("dates", t.Len()).Int("return_dates", a.Returns.Len()).Msg("analysis complete")
	return a, nil
}

// Options configures the report pipeline.
type Options struct {
	Load       LoadOptions
	Duplicates DuplicatePolicy
}

// Run loads path, reshapes it and computes the analysis. Any failure is reported as a
// StageError naming the step that failed.
func Run(path string, opts Options) (*RawTable, *Analysis, error) {
	raw, err := Load(path, opts.Load)
	if err != nil {
		return nil, nil, InStage(StageLoad, err)
	}
	table, err := Reshape(raw, opts.Duplicates)
	if err != nil {
		return raw, nil, InStage(StageReshape, err)
	}
	a, err := Analyze(table)
	if err != nil {
		return raw, nil, InStage(StageAnalyze, err)
	}
	return raw, a, nil
}

// Reshape parses the raw table and pivots it into a PriceTable.
func Reshape(raw *RawTable, policy DuplicatePolicy) (*PriceTable, error) {
	records, err := ParseRecords(raw)
	if err != nil {
		return nil, err
	}
	return Pivot(records, policy)
}
