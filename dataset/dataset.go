// Package dataset loads delimited tabular files into memory and reinterprets
// one column as a parsed timestamp series.
package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Dataset is an ordered table of rows read from a delimited file.
// Row order is file order. Times[i] is only meaningful when Valid[i] is true.
type Dataset struct {
	Path       string
	Columns    []string
	Rows       [][]string
	TimeColumn int
	Times      []time.Time
	Valid      []bool
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// TimeColumnName returns the name of the column used as the timestamp source.
func (d *Dataset) TimeColumnName() string {
	if d == nil || d.TimeColumn < 0 || d.TimeColumn >= len(d.Columns) {
		return ""
	}
	return d.Columns[d.TimeColumn]
}

// PlottableColumns returns every column except the timestamp column, in file order.
func (d *Dataset) PlottableColumns() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.Columns))
	for i, name := range d.Columns {
		if i == d.TimeColumn {
			continue
		}
		out = append(out, name)
	}
	return out
}

// ColumnIndex returns the index of the named column or -1.
func (d *Dataset) ColumnIndex(name string) int {
	if d == nil {
		return -1
	}
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the raw cell text.
func (d *Dataset) Value(row int, col string) (string, bool) {
	ci := d.ColumnIndex(col)
	if ci < 0 || row < 0 || row >= d.Len() {
		return "", false
	}
	return d.Rows[row][ci], true
}

// Float parses a cell as a number. Empty and non-numeric cells are not ok.
func (d *Dataset) Float(row int, col string) (float64, bool) {
	raw, ok := d.Value(row, col)
	if !ok {
		return 0, false
	}
	return parseNumber(raw)
}

// Time returns the parsed timestamp of a row and whether it is valid.
func (d *Dataset) Time(row int) (time.Time, bool) {
	if row < 0 || row >= d.Len() || !d.Valid[row] {
		return time.Time{}, false
	}
	return d.Times[row], true
}

// Bounds returns the minimum and maximum valid timestamps.
func (d *Dataset) Bounds() (min time.Time, max time.Time, ok bool) {
	for i := 0; i < d.Len(); i++ {
		if !d.Valid[i] {
			continue
		}
		ts := d.Times[i]
		if !ok {
			min, max, ok = ts, ts, true
			continue
		}
		if ts.Before(min) {
			min = ts
		}
		if ts.After(max) {
			max = ts
		}
	}
	return min, max, ok
}

// ValidCount returns how many rows carry a parseable timestamp.
func (d *Dataset) ValidCount() int {
	n := 0
	for i := 0; i < d.Len(); i++ {
		if d.Valid[i] {
			n++
		}
	}
	return n
}

// SameColumns reports whether both datasets expose the same plottable columns.
func (d *Dataset) SameColumns(other *Dataset) bool {
	a, b := d.PlottableColumns(), other.PlottableColumns()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
