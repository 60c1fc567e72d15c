package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-plot/logging"
)

func newDataTable() table.Model {
	t := table.New(table.WithFocused(true))
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Cell = s.Cell.Foreground(lipgloss.Color(rowTextFGColor))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(rowSelectedTextFGColor)).
		Background(lipgloss.Color(rowSelectedBGColor)).
		Bold(false)
	t.SetStyles(s)
	return t
}

// refreshTable rebuilds the table from the current view.
func (m *model) refreshTable() {
	m.tableRows = viewRows(m.app.view)
	m.tableCols = columnsFor(m.app.data)
	markEmptyColumns(m.tableCols, m.tableRows)
	m.layoutTable()
}

// layoutTable sizes the columns to the terminal. Rows are cleared before the
// columns change so no row is ever wider than the column set.
func (m *model) layoutTable() {
	w, h := m.contentSize()
	if w <= 0 || h <= 0 {
		return
	}

	visible := 0
	for _, c := range m.tableCols {
		if c.Visible {
			visible++
		}
	}
	// 2 for the border, 2 per column for cell padding
	m.tableCols = layoutColumns(m.tableCols, w-2-2*visible)

	cols := make([]table.Column, 0, visible)
	for _, c := range m.tableCols {
		if !c.Visible || c.Width <= 0 {
			continue
		}
		cols = append(cols, table.Column{Title: c.Name, Width: c.Width})
	}
	rows := make([]table.Row, len(m.tableRows))
	for i, r := range m.tableRows {
		rows[i] = r.Render(m.tableCols)
	}

	cursor := m.table.Cursor()
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetWidth(w - 2)
	m.table.SetHeight(max(1, h-2))
	if len(rows) > 0 {
		m.table.SetCursor(clamp(cursor, 0, len(rows)-1))
	}
}

func (m *model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, m.quit()
	case key.Matches(msg, Keys.Blur), key.Matches(msg, Keys.TableView):
		m.ui.mode = modeChart
		return m, nil
	case key.Matches(msg, Keys.OpenHelp):
		m.openHelp()
		return m, nil
	case key.Matches(msg, Keys.AutoUpdate):
		return m, m.toggleAutoUpdate()
	case key.Matches(msg, Keys.CopyWindow):
		return m, m.copySelectedRow()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) copySelectedRow() tea.Cmd {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tableRows) {
		return m.startNotice("No row selected", noticeWarn, noticeDuration)
	}
	row := m.tableRows[i]
	if err := copyToClipboard(row.String()); err != nil {
		logging.Warnf("copy row %d: %v", row.line, err)
		return m.startNotice("Copy failed: "+err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Row %d copied", row.line), noticeSuccess, noticeDuration)
}
