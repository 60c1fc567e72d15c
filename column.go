package main

import (
	"strings"

	"github.com/andareed/siftly-plot/dataset"
)

type ColumnRole int

const (
	RoleValue ColumnRole = iota
	RoleTime
	RoleLine // row number gutter
)

type ColumnMeta struct {
	Name     string
	Index    int // dataset column, -1 for the row number
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RoleTime:
		return 19
	case RoleLine:
		return 6
	default:
		return 8
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RoleTime:
		return 2.0
	case RoleLine:
		return 0
	default:
		return 1.0
	}
}

// columnsFor lists the table columns of ds: the row number first, then every
// dataset column in file order.
func columnsFor(ds *dataset.Dataset) []ColumnMeta {
	if ds == nil {
		return nil
	}
	cols := make([]ColumnMeta, 0, len(ds.Columns)+1)
	cols = append(cols, newColumnMeta("#", -1, RoleLine))
	for i, name := range ds.Columns {
		role := RoleValue
		if i == ds.TimeColumn {
			role = RoleTime
		}
		cols = append(cols, newColumnMeta(name, i, role))
	}
	return cols
}

func newColumnMeta(name string, index int, role ColumnRole) ColumnMeta {
	return ColumnMeta{
		Name:     name,
		Index:    index,
		Role:     role,
		Visible:  true,
		MinWidth: defaultMinWidthForRole(role),
		Weight:   defaultWeightForRole(role),
	}
}

// markEmptyColumns hides value columns that are blank in every row.
func markEmptyColumns(cols []ColumnMeta, rows []tableRow) {
	if len(rows) == 0 {
		return
	}
	for i := range cols {
		if cols[i].Role != RoleValue {
			continue
		}
		hasData := false
		for _, row := range rows {
			if strings.TrimSpace(row.cell(cols[i].Index)) != "" {
				hasData = true
				break
			}
		}
		if !hasData {
			cols[i].Visible = false
			cols[i].Width = 0
			cols[i].Weight = 0
		}
	}
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: every visible column gets its minimum
		for i := range cols {
			if !cols[i].Visible {
				continue
			}
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}
	return cols
}
