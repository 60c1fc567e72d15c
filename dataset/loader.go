package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultDelimiter is the field separator used when Options leaves it unset.
const DefaultDelimiter = ';'

var (
	ErrNoHeader     = errors.New("file has no header row")
	ErrNoTimeColumn = errors.New("no timestamp column")
)

// Options tune how a file is read. The zero value reads semicolon-delimited
// text, infers the timestamp column and parses timestamps in local time.
type Options struct {
	Delimiter  rune
	TimeColumn string // explicit timestamp column; empty means infer
	Location   *time.Location
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// Load reads the file at path. Calling it again on an unchanged file yields
// an identical Dataset.
func Load(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds.Path = path
	return ds, nil
}

// Parse reads delimited text with a header row from r.
func Parse(r io.Reader, opts Options) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.delimiter()
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rawHeader, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	columns := normalizeColumns(rawHeader)

	timeCol, err := resolveTimeColumn(columns, opts.TimeColumn)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Columns:    columns,
		TimeColumn: timeCol,
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		if len(record) > len(columns) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(columns), len(record))
		}
		row := make([]string, len(columns))
		copy(row, record)
		ds.Rows = append(ds.Rows, row)
	}

	loc := opts.location()
	ds.Times = make([]time.Time, len(ds.Rows))
	ds.Valid = make([]bool, len(ds.Rows))
	for i, row := range ds.Rows {
		ts, ok := ParseTimestamp(row[timeCol], loc)
		if !ok {
			continue
		}
		ds.Times[i] = ts
		ds.Valid[i] = true
	}
	return ds, nil
}

// normalizeColumns trims names and suffixes duplicates so every name is a
// unique key. Generated names never take a name that appears in the header.
func normalizeColumns(raw []string) []string {
	cols := make([]string, len(raw))
	reserved := make(map[string]bool, len(raw))
	for i, name := range raw {
		cols[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		reserved[cols[i]] = true
	}

	used := make(map[string]bool, len(raw))
	next := make(map[string]int)
	for i, name := range cols {
		if used[name] {
			n := max(next[name], 1)
			for used[name+"."+strconv.Itoa(n)] || reserved[name+"."+strconv.Itoa(n)] {
				n++
			}
			next[name] = n + 1
			name = name + "." + strconv.Itoa(n)
		}
		used[name] = true
		cols[i] = name
	}
	return cols
}

func resolveTimeColumn(cols []string, explicit string) (int, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit == "" {
		return InferTimeColumn(cols)
	}
	for i, name := range cols {
		if strings.EqualFold(name, explicit) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: column %q not found", ErrNoTimeColumn, explicit)
}

// InferTimeColumn picks the first column whose name contains "time"
// (case-insensitive) and falls back to the second column.
func InferTimeColumn(cols []string) (int, error) {
	for i, name := range cols {
		if strings.Contains(strings.ToLower(name), "time") {
			return i, nil
		}
	}
	if len(cols) < 2 {
		return -1, fmt.Errorf("%w: no time-like column name and fewer than two columns", ErrNoTimeColumn)
	}
	return 1, nil
}

// ParseTimestamp accepts "2006-01-02 15:04:05" and the other layouts
// dateparse recognises. Zone-less values are read in loc.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	ts, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
