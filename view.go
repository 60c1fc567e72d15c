package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-plot/chart"
	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/selection"
	"github.com/andareed/siftly-plot/timewindow"
)

const minChartWidth = 20

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	w, h := m.contentSize()
	body := m.chartView(w, h)
	if m.ui.mode == modeTable {
		body = m.tableView(w, h)
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footerView(w)))
}

func (m *model) chartView(w, h int) string {
	controls := m.controlsView(h)
	chartW := max(minChartWidth, w-lipgloss.Width(controls)-1)

	var plot string
	if m.app.hasData() {
		plot = chart.Render(m.app.view, m.chartPanels(), chartW, h)
	} else {
		plot = lipgloss.Place(chartW, h, lipgloss.Center, lipgloss.Center,
			placeholder.Render("No file loaded. Press o to open a CSV file."))
	}
	plot = lipgloss.NewStyle().MaxHeight(h).Render(plot)
	return lipgloss.JoinHorizontal(lipgloss.Top, controls, " ", plot)
}

func (m *model) tableView(w, h int) string {
	if !m.app.hasData() {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, placeholder.Render("No rows to show."))
	}
	return tableStyle.Render(m.table.View())
}

func (m *model) controlsView(h int) string {
	inner := controlsWidth - controlsArea.GetHorizontalPadding()

	lines := []string{sectionStyle.Render("Window"), m.windowModeLine()}
	switch {
	case m.ui.useFull:
		lines = append(lines, dimStyle.Render(" every row is plotted"))
	case m.ui.windowMode == timewindow.ModeRange:
		lines = append(lines,
			m.inputLine("Start", focusStart, ""),
			m.inputLine("End", focusEnd, ""),
			dimStyle.Render(" empty or invalid: data bounds"),
		)
	default:
		lines = append(lines,
			m.inputLine("Duration", focusDuration, " "+valueStyle.Render(m.ui.unit.String())),
			" "+labelStyle.Render(fmt.Sprintf("%-9s", "Anchor"))+valueStyle.Render(m.anchorLabel()),
			" "+m.offsetSlider(inner-1),
			" "+dimStyle.Render(fmt.Sprintf("row %d of %d", m.ui.offset+1, m.app.rowCount())),
		)
	}

	lines = append(lines, "", sectionStyle.Render(fmt.Sprintf("Panel %d of %d", m.ui.panel+1, m.app.registry.PanelCount())))
	axis := selection.AxisAuto
	if p, err := m.app.registry.Panel(m.ui.panel); err == nil {
		axis = p.Axis
	}
	lines = append(lines, " "+labelStyle.Render(fmt.Sprintf("%-9s", "Y axis"))+valueStyle.Render(axis.String()))
	if axis == selection.AxisFixed {
		lines = append(lines,
			m.inputLine("Y min", focusYMin, ""),
			m.inputLine("Y max", focusYMax, ""),
		)
	}
	lines = append(lines, "")
	lines = append(lines, m.columnLines(h-len(lines), inner)...)

	return controlsArea.
		Width(controlsWidth).
		Height(h).
		MaxHeight(h).
		Render(strings.Join(lines, "\n"))
}

func (m *model) windowModeLine() string {
	active := timewindow.ModeRolling
	switch {
	case m.ui.useFull:
		active = timewindow.ModeFull
	case m.ui.windowMode == timewindow.ModeRange:
		active = timewindow.ModeRange
	}
	options := []struct {
		key  string
		mode timewindow.Mode
	}{
		{"w", timewindow.ModeFull},
		{"r", timewindow.ModeRolling},
		{"e", timewindow.ModeRange},
	}
	parts := make([]string, 0, len(options))
	for _, o := range options {
		text := o.key + " " + o.mode.String()
		if o.mode == active {
			parts = append(parts, activeOption.Render(text))
			continue
		}
		parts = append(parts, dimStyle.Render(text))
	}
	return " " + strings.Join(parts, "  ")
}

func (m *model) inputLine(label string, f inputFocus, suffix string) string {
	marker := " "
	if m.ui.focus == f {
		marker = focusedMarker
	}
	return marker + labelStyle.Render(fmt.Sprintf("%-9s", label)) + "[" + m.inputs.field(f).View() + "]" + suffix
}

// columnLines lists the candidate columns with their checkbox for the
// current panel, scrolled so the cursor stays visible.
func (m *model) columnLines(avail, width int) []string {
	cols := m.app.registry.Columns()
	if len(cols) == 0 {
		return []string{dimStyle.Render(" no columns loaded")}
	}
	avail = max(1, avail)
	start := 0
	if m.ui.column >= avail {
		start = m.ui.column - avail + 1
	}
	end := min(len(cols), start+avail)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		col := cols[i]
		marker := " "
		if i == m.ui.column {
			marker = focusedMarker
		}
		check := "[ ]"
		if m.app.registry.IsSelected(m.ui.panel, col) {
			check = "[x]"
		}
		swatch := lipgloss.NewStyle().Foreground(chart.ColorFor(m.app.data.ColumnIndex(col))).Render("━")
		lines = append(lines, fmt.Sprintf("%s%s %s %s", marker, check, swatch, truncatePlain(col, width-8)))
	}
	return lines
}

func (m *model) modeLabel() string {
	switch {
	case m.ui.mode == modeTable:
		return "TABLE"
	case m.ui.focus != focusNone:
		return "INPUT"
	default:
		return "CHART"
	}
}

func (m *model) legend() string {
	switch {
	case m.ui.mode == modeTable:
		return "(esc back · y copy row · p auto-update · ? help)"
	case m.ui.focus != focusNone:
		return "(tab next · enter apply · esc done)"
	default:
		return "(? help · o open · enter plot · p auto-update · v table)"
	}
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:       m.modeLabel(),
		AutoUpdate: m.app.poller.Running(),
		Interval:   m.app.poller.Interval(),
		Panels:     m.app.registry.PanelCount(),
		Rows:       m.app.view.Len(),
		TotalRows:  m.app.rowCount(),
		Legend:     m.legend(),
	}
	if m.app.path != "" {
		st.FileName = filepath.Base(m.app.path)
	}
	if m.app.view != nil {
		st.WindowLabel = m.app.view.Label()
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeKind)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d panel=%d col=%d off=%d focus=%d",
			m.terminalWidth, m.terminalHeight, m.ui.panel, m.ui.column, m.ui.offset, m.ui.focus)
	}

	return RenderFooter(width, st, DefaultFooterStyles())
}
