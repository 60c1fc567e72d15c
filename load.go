package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-plot/dataset"
	"github.com/andareed/siftly-plot/dialogs"
	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/poller"
	"github.com/andareed/siftly-plot/timewindow"
)

// loadedMsg carries the result of reading a file. Polled loads remember the
// tick that started them so a stopped or restarted poller can drop them.
type loadedMsg struct {
	path string
	data *dataset.Dataset
	err  error
	poll bool
	tick poller.TickMsg
}

func loadCmd(path string, opts dataset.Options) tea.Cmd {
	return func() tea.Msg {
		data, err := dataset.Load(path, opts)
		return loadedMsg{path: path, data: data, err: err}
	}
}

func pollCmd(path string, opts dataset.Options, tick poller.TickMsg) tea.Cmd {
	return func() tea.Msg {
		data, err := dataset.Load(path, opts)
		return loadedMsg{path: path, data: data, err: err, poll: true, tick: tick}
	}
}

func (m *model) handleLoaded(msg loadedMsg) tea.Cmd {
	if msg.poll {
		return m.handlePolled(msg)
	}
	if msg.err != nil {
		logging.Errorf("load %q: %v", msg.path, msg.err)
		m.activeDialog = dialogs.NewErrorDialog("Could not open "+filepath.Base(msg.path), msg.err)
		return nil
	}

	cmd := m.adopt(msg.path, msg.data, true)
	logging.Infof("loaded %q: %d rows, time column %q", msg.path, msg.data.Len(), msg.data.TimeColumnName())
	notice := m.startNotice(fmt.Sprintf("Loaded %s (%d rows)", filepath.Base(msg.path), msg.data.Len()), noticeSuccess, noticeDuration)
	return tea.Batch(cmd, notice)
}

// adopt replaces the dataset wholesale. A manual open rebuilds the panels and
// re-applies the window controls; a poll keeps selections while the column
// set is unchanged and keeps the last applied spec.
func (m *model) adopt(path string, data *dataset.Dataset, opened bool) tea.Cmd {
	m.app.path = path
	m.app.data = data

	rebuilt := true
	if opened {
		m.app.registry.Reset(data.PlottableColumns())
	} else {
		rebuilt = m.app.registry.Sync(data.PlottableColumns())
	}
	if rebuilt {
		logging.Infof("panels rebuilt for %d columns, selections reset", len(data.PlottableColumns()))
		m.ui.column = 0
		m.loadAxisInputs()
		m.refocusIfHidden()
	}
	m.moveColumn(0)
	m.ui.offset = timewindow.ClampOffset(m.ui.offset, data.Len())

	if opened {
		cmd := m.applyWindow()
		if m.app.view == nil || m.app.view.Dataset != data {
			// controls do not parse: still show the new file with the last good spec
			return tea.Batch(cmd, m.filterWith(m.app.spec))
		}
		return cmd
	}

	spec := m.app.spec
	if spec.Mode == timewindow.ModeRolling {
		spec.Offset = m.ui.offset
	}
	return m.filterWith(spec)
}
