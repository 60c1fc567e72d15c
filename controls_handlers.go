package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-plot/selection"
	"github.com/andareed/siftly-plot/timewindow"
)

// focusable lists the inputs that mean something in the current state, in
// tab order. focusNone is always first.
func (m *model) focusable() []inputFocus {
	order := []inputFocus{focusNone}
	if !m.ui.useFull {
		switch m.ui.windowMode {
		case timewindow.ModeRolling:
			order = append(order, focusDuration)
		case timewindow.ModeRange:
			order = append(order, focusStart, focusEnd)
		}
	}
	if p, err := m.app.registry.Panel(m.ui.panel); err == nil && p.Axis == selection.AxisFixed {
		order = append(order, focusYMin, focusYMax)
	}
	return order
}

func (m *model) setFocus(f inputFocus) tea.Cmd {
	m.ui.focus = f
	target := m.inputs.field(f)
	var cmd tea.Cmd
	for _, ti := range m.inputs.all() {
		if ti == target {
			cmd = ti.Focus()
			continue
		}
		ti.Blur()
	}
	return cmd
}

func (m *model) cycleFocus(step int) tea.Cmd {
	order := m.focusable()
	idx := 0
	for i, f := range order {
		if f == m.ui.focus {
			idx = i
			break
		}
	}
	next := (idx + step + len(order)) % len(order)
	return m.setFocus(order[next])
}

func (m *model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Blur):
		return m, m.setFocus(focusNone)
	case key.Matches(msg, Keys.NextInput):
		return m, m.cycleFocus(1)
	case key.Matches(msg, Keys.PrevInput):
		return m, m.cycleFocus(-1)
	case key.Matches(msg, Keys.Plot):
		focusCmd := m.setFocus(focusNone)
		return m, tea.Batch(focusCmd, m.applyWindow())
	}

	ti := m.inputs.field(m.ui.focus)
	if ti == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	if m.ui.focus == focusYMin || m.ui.focus == focusYMax {
		m.syncAxisBounds()
	}
	return m, cmd
}

// loadAxisInputs shows the bounds of the panel being edited.
func (m *model) loadAxisInputs() {
	p, err := m.app.registry.Panel(m.ui.panel)
	if err != nil {
		return
	}
	m.inputs.yMin.SetValue(p.MinText)
	m.inputs.yMax.SetValue(p.MaxText)
}

func (m *model) syncAxisBounds() {
	_ = m.app.registry.SetAxisBounds(m.ui.panel, m.inputs.yMin.Value(), m.inputs.yMax.Value())
}
