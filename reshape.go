package stocks

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/etnz/stocks/date"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Record is one observation of the input table: the closing price of a ticker on a day.
type Record struct {
	Date   date.Date
	Ticker string
	Close  decimal.Decimal
}

// ParseRecords parses the Date, Ticker and Close columns of every row.
// Rows with an empty Close cell carry no observation and are skipped.
func ParseRecords(t *RawTable) ([]Record, error) {
	if err := t.checkColumns(); err != nil {
		return nil, err
	}
	dateCol, _ := t.Column(ColumnDate)
	tickerCol, _ := t.Column(ColumnTicker)
	closeCol, _ := t.Column(ColumnClose)

	records := make([]Record, 0, len(t.Rows))
	for i, row := range t.Rows {
		on, err := date.Parse(strings.TrimSpace(row[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrParse, i+1, err)
		}
		ticker := strings.TrimSpace(row[tickerCol])
		if ticker == "" {
			return nil, fmt.Errorf("%w: row %d: empty ticker", ErrParse, i+1)
		}
		cell := strings.TrimSpace(row[closeCol])
		if cell == "" {
			log.Debug().Int("row", i+1).Str("ticker", ticker).Stringer("date", on).Msg("skipping row without close price")
			continue
		}
		price, err := decimal.NewFromString(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid close price %q: %w", ErrParse, i+1, cell, err)
		}
		records = append(records, Record{Date: on, Ticker: ticker, Close: price})
	}
	return records, nil
}

// Pivot reshapes records into a table indexed by date, with one column per ticker.
// Dates are sorted ascending and tickers lexicographically.
func Pivot(records []Record, policy DuplicatePolicy) (*PriceTable, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no price records", ErrEmptyData)
	}

	series := make(map[string]*date.History[float64])
	for i, r := range records {
		h, ok := series[r.Ticker]
		if !ok {
			h = new(date.History[float64])
			series[r.Ticker] = h
		}
		if replaced := h.Append(r.Date, r.Close.InexactFloat64()); replaced {
			if policy == DuplicateError {
				return nil, fmt.Errorf("%w: %s on %s (record %d)", ErrDuplicateKey, r.Ticker, r.Date, i+1)
			}
			log.Debug().Str("ticker", r.Ticker).Stringer("date", r.Date).Msg("duplicate price, keeping the last one")
		}
	}

	tickers := slices.Sorted(maps.Keys(series))
	histories := make([]*date.History[float64], len(tickers))
	for j, ticker := range tickers {
		histories[j] = series[ticker]
	}
	dates := slices.Collect(date.Iterate(histories...))

	columns := make([][]float64, len(tickers))
	for j, h := range histories {
		col := make([]float64, len(dates))
		i := 0
		for on, value := range h.Values() {
			for dates[i] != on {
				col[i] = math.NaN()
				i++
			}
			col[i] = value
			i++
		}
		for ; i < len(dates); i++ {
			col[i] = math.NaN()
		}
		columns[j] = col
	}

	t := &PriceTable{dates: dates, tickers: tickers, columns: columns}
	log.Debug().Int("dates", len(dates)).Int("tickers", len(tickers)).Int("cells", t.Cells()).Msg("pivoted price table")
	return t, nil
}
