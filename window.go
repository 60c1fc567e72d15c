package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/timewindow"
)

// buildSpec turns the window controls into a spec. Only the rolling window
// can fail: its duration must be a non-negative integer.
func (m *model) buildSpec() (timewindow.Spec, error) {
	switch {
	case m.ui.useFull:
		return timewindow.Full(), nil
	case m.ui.windowMode == timewindow.ModeRange:
		return timewindow.NewRange(m.inputs.start.Value(), m.inputs.end.Value()), nil
	default:
		return timewindow.NewRolling(strconv.Itoa(m.ui.offset), m.inputs.duration.Value(), m.ui.unit)
	}
}

// applyWindow filters the dataset with the current controls. On failure the
// previous view stays on screen.
func (m *model) applyWindow() tea.Cmd {
	spec, err := m.buildSpec()
	if err != nil {
		logging.Warnf("window not applied: %v", err)
		return m.startNotice(err.Error(), noticeWarn, noticeDuration)
	}
	return m.filterWith(spec)
}

func (m *model) filterWith(spec timewindow.Spec) tea.Cmd {
	view, err := timewindow.Filter(m.app.data, spec)
	if err != nil {
		logging.Warnf("window not applied: %v", err)
		return m.startNotice(err.Error(), noticeWarn, noticeDuration)
	}
	m.app.spec = spec
	m.app.view = view
	m.refreshTable()
	logging.Debugf("window %s kept %d/%d rows", spec.Mode, view.Len(), m.app.rowCount())
	return nil
}

func (m *model) rollingActive() bool {
	return !m.ui.useFull && m.ui.windowMode == timewindow.ModeRolling
}

func (m *model) toggleFull() tea.Cmd {
	m.ui.useFull = !m.ui.useFull
	if !m.ui.useFull && m.ui.windowMode == timewindow.ModeRange {
		m.prefillRange()
	}
	m.refocusIfHidden()
	return m.applyWindow()
}

func (m *model) setWindowMode(mode timewindow.Mode) tea.Cmd {
	m.ui.useFull = false
	m.ui.windowMode = mode
	if mode == timewindow.ModeRange {
		m.prefillRange()
	}
	m.refocusIfHidden()
	return m.applyWindow()
}

func (m *model) cycleUnit() tea.Cmd {
	m.ui.unit = m.ui.unit.Next()
	if m.rollingActive() {
		return m.applyWindow()
	}
	return nil
}

// moveOffset slides the rolling-window anchor by delta rows.
func (m *model) moveOffset(delta int) tea.Cmd {
	n := m.app.rowCount()
	if n == 0 {
		return nil
	}
	next := timewindow.ClampOffset(m.ui.offset+delta, n)
	if next == m.ui.offset {
		return nil
	}
	m.ui.offset = next
	if m.rollingActive() {
		return m.applyWindow()
	}
	return nil
}

func (m *model) offsetPage() int {
	return max(1, m.app.rowCount()/offsetPageFactor)
}

// prefillRange seeds empty start/end inputs with the dataset bounds.
func (m *model) prefillRange() {
	if !m.app.hasData() {
		return
	}
	first, last, ok := m.app.data.Bounds()
	if !ok {
		return
	}
	if strings.TrimSpace(m.inputs.start.Value()) == "" {
		m.inputs.start.SetValue(first.Format(timewindow.InputLayout))
	}
	if strings.TrimSpace(m.inputs.end.Value()) == "" {
		m.inputs.end.SetValue(last.Format(timewindow.InputLayout))
	}
}

// refocusIfHidden drops focus from an input that the new mode hides.
func (m *model) refocusIfHidden() {
	for _, f := range m.focusable() {
		if f == m.ui.focus {
			return
		}
	}
	m.setFocus(focusNone)
}

func (m *model) anchorLabel() string {
	if !m.app.hasData() || m.app.rowCount() == 0 {
		return "n/a"
	}
	ts, ok := m.app.data.Time(timewindow.ClampOffset(m.ui.offset, m.app.rowCount()))
	if !ok {
		return "invalid timestamp"
	}
	return ts.Format(timewindow.InputLayout)
}

// offsetSlider draws the anchor position as a bar of the given width.
func (m *model) offsetSlider(width int) string {
	n := m.app.rowCount()
	if n == 0 || width < 3 {
		return "n/a"
	}
	bar := []rune(strings.Repeat("─", width))
	pos := 0
	if n > 1 {
		pos = m.ui.offset * (width - 1) / (n - 1)
	}
	for i := 0; i < pos; i++ {
		bar[i] = '━'
	}
	bar[pos] = '●'
	return string(bar)
}

// windowClipboardText is what the copy key puts on the clipboard in chart
// mode: the resolved bounds of the current view.
func (m *model) windowClipboardText() (string, bool) {
	v := m.app.view
	if v == nil || !v.Bounded {
		return "", false
	}
	return fmt.Sprintf("%s\t%s", v.Start.Format(timewindow.InputLayout), v.End.Format(timewindow.InputLayout)), true
}
