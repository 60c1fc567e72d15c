package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/poller"
)

func (m *model) toggleAutoUpdate() tea.Cmd {
	p := m.app.poller
	if p.Running() {
		p.Stop()
		logging.Infof("auto-update stopped")
		return m.startNotice("Auto-update off", noticeInfo, noticeDuration)
	}
	if m.app.path == "" {
		logging.Warnf("auto-update refused: no file loaded")
		return m.startNotice("Open a file before enabling auto-update", noticeWarn, noticeDuration)
	}
	m.ui.pollFailures = 0
	logging.Infof("auto-update started, every %s", p.Interval())
	return tea.Batch(p.Start(), m.startNotice(fmt.Sprintf("Auto-update every %s", p.Interval()), noticeInfo, noticeDuration))
}

func (m *model) handleTick(msg poller.TickMsg) tea.Cmd {
	p := m.app.poller
	if !p.Accept(msg) {
		logging.Debugf("auto-update: dropping stale tick gen=%d", msg.Gen)
		return nil
	}
	if m.app.path == "" {
		p.Stop()
		logging.Warnf("auto-update stopped: no file loaded")
		return m.startNotice("Auto-update stopped: no file loaded", noticeWarn, noticeDuration)
	}
	return pollCmd(m.app.path, m.app.loadOpts, msg)
}

// handlePolled applies a polled reload and schedules the next tick, so a
// slow load delays the next poll instead of overlapping it.
func (m *model) handlePolled(msg loadedMsg) tea.Cmd {
	next := func() tea.Cmd {
		if m.app.poller.Accept(msg.tick) {
			return m.app.poller.Next()
		}
		return nil
	}

	switch {
	case msg.path != m.app.path:
		logging.Debugf("auto-update: dropping result for %q, now showing %q", msg.path, m.app.path)
		return next()
	case msg.err != nil:
		logging.Errorf("auto-update: reload %q: %v", msg.path, msg.err)
		return tea.Batch(next(), m.pollFailedNotice(msg.err))
	}

	m.ui.pollFailures = 0
	cmd := m.adopt(msg.path, msg.data, false)
	logging.Debugf("auto-update: reloaded %q, %d rows", msg.path, msg.data.Len())
	return tea.Batch(cmd, next())
}
