package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 3 * time.Second

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarn
	noticeError
)

func (k noticeKind) icon() string {
	switch k {
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	default:
		return "ℹ"
	}
}

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	return kind.icon() + " " + msg
}

func (m *model) startNotice(msg string, kind noticeKind, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeKind = kind

	// bump sequence to invalidate older timers
	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

// pollFailedNotice reports a failed auto-update reload with the number of
// consecutive failures. It stays up for at least two poll intervals.
func (m *model) pollFailedNotice(err error) tea.Cmd {
	m.ui.pollFailures++
	msg := "Auto-update failed: " + err.Error()
	if m.ui.pollFailures > 1 {
		msg = fmt.Sprintf("Auto-update failed (%d in a row): %v", m.ui.pollFailures, err)
	}
	return m.startNotice(msg, noticeError, max(noticeDuration, 2*m.app.poller.Interval()))
}

func (m *model) clearNotice(msg clearNoticeMsg) {
	if msg.id != m.ui.noticeSeq {
		return
	}
	m.ui.noticeMsg = ""
	m.ui.noticeKind = noticeInfo
}
