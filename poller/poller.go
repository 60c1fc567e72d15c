// Package poller schedules the periodic auto-update tick as an explicit
// start/stop state machine on top of tea.Tick.
package poller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval matches the refresh period used when nothing is configured.
const DefaultInterval = time.Second

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// TickMsg is delivered when a scheduled interval elapses.
type TickMsg struct {
	Gen int
	At  time.Time
}

// Poller produces one tick at a time. The owner decides what a tick does and
// calls Next once that work is finished, so a slow reload delays the next
// tick instead of overlapping it.
type Poller struct {
	interval time.Duration
	state    State
	gen      int
}

func New(interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{interval: interval}
}

func (p *Poller) Interval() time.Duration { return p.interval }
func (p *Poller) State() State            { return p.state }
func (p *Poller) Running() bool           { return p.state == Running }

// Start moves to Running and schedules the first tick. Starting a running
// poller is a no-op.
func (p *Poller) Start() tea.Cmd {
	if p.state == Running {
		return nil
	}
	p.state = Running
	// bump generation so ticks from an earlier run are ignored
	p.gen++
	return p.schedule()
}

// Stop moves to Stopped. A tick already in flight is dropped when it arrives.
func (p *Poller) Stop() {
	p.state = Stopped
	p.gen++
}

// Toggle starts a stopped poller or stops a running one.
func (p *Poller) Toggle() tea.Cmd {
	if p.state == Running {
		p.Stop()
		return nil
	}
	return p.Start()
}

// Accept reports whether msg belongs to the current run and should trigger work.
func (p *Poller) Accept(msg TickMsg) bool {
	return p.state == Running && msg.Gen == p.gen
}

// Next schedules the following tick, or nothing once stopped.
func (p *Poller) Next() tea.Cmd {
	if p.state != Running {
		return nil
	}
	return p.schedule()
}

func (p *Poller) schedule() tea.Cmd {
	gen := p.gen
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
