package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/andareed/siftly-plot/timewindow"
)

// tableRow is one dataset row as shown in the table view.
type tableRow struct {
	cols []string
	line int // 1-based data row number in the file
}

func viewRows(v *timewindow.View) []tableRow {
	if v == nil || v.Dataset == nil {
		return nil
	}
	rows := make([]tableRow, 0, len(v.Rows))
	for _, idx := range v.Rows {
		rows = append(rows, tableRow{cols: v.Dataset.Rows[idx], line: idx + 1})
	}
	return rows
}

func (r tableRow) cell(index int) string {
	if index < 0 {
		return strconv.Itoa(r.line)
	}
	if index >= len(r.cols) {
		return ""
	}
	return r.cols[index]
}

func (r tableRow) Join(sep string) string {
	return strings.Join(r.cols, sep)
}

// String implements fmt.Stringer; tab-separated for the clipboard.
func (r tableRow) String() string {
	return r.Join("\t")
}

// Render returns the cells of the visible columns.
func (r tableRow) Render(colsMeta []ColumnMeta) table.Row {
	out := make(table.Row, 0, len(colsMeta))
	for _, meta := range colsMeta {
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		out = append(out, r.cell(meta.Index))
	}
	return out
}
