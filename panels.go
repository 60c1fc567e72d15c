package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-plot/chart"
	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/selection"
)

// changePanelCount adds or removes a panel. Every selection is discarded.
func (m *model) changePanelCount(delta int) tea.Cmd {
	n := m.app.registry.PanelCount() + delta
	if err := m.app.registry.SetPanelCount(n); err != nil {
		logging.Debugf("panel count unchanged: %v", err)
		return m.startNotice(fmt.Sprintf("Panels must be %d-%d", selection.MinPanels, selection.MaxPanels), noticeWarn, noticeDuration)
	}
	m.ui.panel = min(m.ui.panel, n-1)
	m.loadAxisInputs()
	m.refocusIfHidden()
	logging.Infof("panel count set to %d, selections cleared", n)
	return m.startNotice(fmt.Sprintf("%d panel(s), selections cleared", n), noticeInfo, noticeDuration)
}

func (m *model) movePanel(delta int) {
	n := m.app.registry.PanelCount()
	m.ui.panel = (m.ui.panel + delta + n) % n
	m.loadAxisInputs()
	m.refocusIfHidden()
}

func (m *model) moveColumn(delta int) {
	n := len(m.app.registry.Columns())
	if n == 0 {
		m.ui.column = 0
		return
	}
	m.ui.column = clamp(m.ui.column+delta, 0, n-1)
}

func (m *model) toggleColumn() tea.Cmd {
	cols := m.app.registry.Columns()
	if m.ui.column < 0 || m.ui.column >= len(cols) {
		return nil
	}
	col := cols[m.ui.column]
	on, err := m.app.registry.Toggle(m.ui.panel, col)
	if err != nil {
		logging.Warnf("toggle %q in panel %d: %v", col, m.ui.panel+1, err)
		return m.startNotice(err.Error(), noticeError, noticeDuration)
	}
	logging.Debugf("panel %d column %q selected=%v", m.ui.panel+1, col, on)
	return nil
}

func (m *model) toggleAxisMode() tea.Cmd {
	p, err := m.app.registry.Panel(m.ui.panel)
	if err != nil {
		return nil
	}
	next := selection.AxisFixed
	if p.Axis == selection.AxisFixed {
		next = selection.AxisAuto
	}
	_ = m.app.registry.SetAxisMode(m.ui.panel, next)
	m.loadAxisInputs()
	m.refocusIfHidden()
	if next == selection.AxisFixed {
		if _, _, fixed := m.app.registry.YRange(m.ui.panel); !fixed {
			return m.startNotice("Axis bounds invalid, using auto scale", noticeWarn, noticeDuration)
		}
	}
	return nil
}

// chartPanels snapshots the registry for the renderer.
func (m *model) chartPanels() []chart.Panel {
	n := m.app.registry.PanelCount()
	panels := make([]chart.Panel, n)
	for i := range panels {
		lo, hi, fixed := m.app.registry.YRange(i)
		panels[i] = chart.Panel{
			Title:   fmt.Sprintf("Panel %d", i+1),
			Columns: m.app.registry.Selected(i),
			Fixed:   fixed,
			YMin:    lo,
			YMax:    hi,
		}
	}
	return panels
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
