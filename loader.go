package stocks

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog/log"
)

// Required column names of a price table.
const (
	ColumnDate   = "Date"
	ColumnTicker = "Ticker"
	ColumnClose  = "Close"
)

var requiredColumns = []string{ColumnDate, ColumnTicker, ColumnClose}

// DefaultRecordsPath selects every element of a top level JSON array.
const DefaultRecordsPath = "$[*]"

// LoadOptions tunes how an input file is decoded.
type LoadOptions struct {
	Comma       rune   // field delimiter for delimited files, ',' when zero.
	RecordsPath string // JSONPath to the array of records in JSON files, DefaultRecordsPath when empty.
}

// RawTable is the input table as read from the file: column names and text cells, in file order.
type RawTable struct {
	Columns []string
	Rows    [][]string
	index   map[string]int
}

func newRawTable(columns []string) *RawTable {
	t := &RawTable{Columns: columns, index: make(map[string]int, len(columns))}
	for i, name := range columns {
		t.index[strings.TrimSpace(name)] = i
	}
	return t
}

// Column returns the position of a named column.
func (t *RawTable) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Len returns the number of rows.
func (t *RawTable) Len() int { return len(t.Rows) }

// Head returns at most the first n rows.
func (t *RawTable) Head(n int) [][]string {
	return t.Rows[:min(n, len(t.Rows))]
}

// checkColumns verifies that all required columns are present.
func (t *RawTable) checkColumns() error {
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := t.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required columns %s", ErrParse, strings.Join(missing, ", "))
	}
	return nil
}

// Load reads a price table from path. Files with a ".json" extension are decoded as JSON,
// anything else as a delimited text table.
func Load(path string, opts LoadOptions) (*RawTable, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open input file %q: %w", path, err)
	}
	defer f.Close()

	var t *RawTable
	if strings.EqualFold(filepath.Ext(path), ".json") {
		t, err = DecodeJSON(f, opts.RecordsPath)
	} else {
		t, err = DecodeCSV(f, opts.Comma)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	log.Debug().Str("file", path).Int("rows", t.Len()).Strs("columns", t.Columns).Msg("loaded input table")
	return t, nil
}

// DecodeCSV reads a delimited table whose first row holds the column names.
func DecodeCSV(r io.Reader, comma rune) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	if comma != 0 {
		reader.Comma = comma
	}
	// Row width is checked below to report a ParseError with the line number.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no header row", ErrEmptyData)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrParse, err)
	}
	// Excel exports start with a byte order mark.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	t := newRawTable(header)
	if err := t.checkColumns(); err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if len(record) != len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields want %d", ErrParse, line, len(record), len(header))
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// DecodeJSON reads a JSON document and turns every object selected by recordsPath into a row.
// Columns are the union of all keys, with Date, Ticker and Close first.
func DecodeJSON(r io.Reader, recordsPath string) (*RawTable, error) {
	if recordsPath == "" {
		recordsPath = DefaultRecordsPath
	}
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty JSON document", ErrEmptyData)
		}
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrParse, err)
	}

	selected, err := jsonpath.Get(recordsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrParse, recordsPath, err)
	}
	// jsonpath returns a single value when the path is not a wildcard.
	items, ok := selected.([]any)
	if !ok {
		items = []any{selected}
	}

	objects := make([]map[string]any, 0, len(items))
	keys := make(map[string]bool)
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %d is %T, want an object", ErrParse, i, item)
		}
		for _, name := range requiredColumns {
			if _, ok := obj[name]; !ok {
				return nil, fmt.Errorf("%w: record %d has no %q field", ErrParse, i, name)
			}
		}
		for k := range obj {
			keys[k] = true
		}
		objects = append(objects, obj)
	}

	columns := slices.Clone(requiredColumns)
	var extra []string
	for k := range keys {
		if !slices.Contains(requiredColumns, k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	columns = append(columns, extra...)

	t := newRawTable(columns)
	for _, obj := range objects {
		row := make([]string, len(columns))
		for i, name := range columns {
			row[i] = jsonCell(obj[name])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// jsonCell formats a decoded JSON value as a table cell.
func jsonCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
