package stocks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/stocks/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// scenarioCSV is the two tickers, two days scenario: A goes up 10%, B goes down 10%.
const scenarioCSV = `Date,Ticker,Open,Close,Volume
2024-01-01,A,99,100,1000
2024-01-02,A,101,110,1200
2024-01-01,B,51,50,300
2024-01-02,B,49,45,310
`

// writeFile writes content in a temporary file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// rec is a short hand to build a Record.
func rec(on, ticker string, close float64) Record {
	return Record{Date: date.MustParse(on), Ticker: ticker, Close: decimal.NewFromFloat(close)}
}

// table builds a PriceTable from records, failing the test on error.
func table(t *testing.T, records ...Record) *PriceTable {
	t.Helper()
	pt, err := Pivot(records, DuplicateError)
	require.NoError(t, err)
	return pt
}

// scenarioTable returns the PriceTable of scenarioCSV.
func scenarioTable(t *testing.T) *PriceTable {
	t.Helper()
	raw, err := DecodeCSV(strings.NewReader(scenarioCSV), 0)
	require.NoError(t, err)
	pt, err := Reshape(raw, DuplicateError)
	require.NoError(t, err)
	return pt
}
