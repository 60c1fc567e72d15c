// Package timewindow narrows a dataset to a time sub-range, either by an
// explicit start/end pair or by a rolling window anchored at a row offset.
package timewindow

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-plot/dataset"
)

// InputLayout is the layout used to display and type explicit bounds.
const InputLayout = "2006-01-02 15:04:05"

var (
	ErrBadDuration = errors.New("invalid window duration")
	ErrBadOffset   = errors.New("invalid window offset")
	ErrBadUnit     = errors.New("invalid window unit")
)

type Mode int

const (
	ModeFull Mode = iota
	ModeRange
	ModeRolling
)

func (m Mode) String() string {
	switch m {
	case ModeRange:
		return "range"
	case ModeRolling:
		return "rolling"
	default:
		return "full"
	}
}

type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
)

var units = []Unit{Seconds, Minutes, Hours}

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Hours:
		return "hours"
	default:
		return "minutes"
	}
}

func (u Unit) size() time.Duration {
	switch u {
	case Seconds:
		return time.Second
	case Hours:
		return time.Hour
	default:
		return time.Minute
	}
}

// MaxCount is the largest n for which Duration(n) does not overflow.
func (u Unit) MaxCount() int {
	return int(math.MaxInt64 / int64(u.size()))
}

// Duration returns the length of n units, saturating at the largest
// representable duration.
func (u Unit) Duration(n int) time.Duration {
	if n > u.MaxCount() {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(n) * u.size()
}

// Next cycles seconds → minutes → hours → seconds.
func (u Unit) Next() Unit {
	return units[(int(u)+1)%len(units)]
}

// ParseUnit accepts the unit names and their usual abbreviations.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "secs", "second", "seconds":
		return Seconds, nil
	case "m", "min", "mins", "minute", "minutes":
		return Minutes, nil
	case "h", "hr", "hrs", "hour", "hours":
		return Hours, nil
	}
	return Minutes, fmt.Errorf("%w: %q", ErrBadUnit, s)
}

// Spec describes which rows to keep.
//
// ModeRange uses Start and End as typed by the user; empty or unparseable
// values fall back to the dataset bounds. ModeRolling keeps
// [anchor, anchor+Duration units] where anchor is the timestamp of row Offset.
type Spec struct {
	Mode     Mode
	Start    string
	End      string
	Offset   int
	Duration int
	Unit     Unit
}

// Full returns a spec that keeps every row.
func Full() Spec {
	return Spec{Mode: ModeFull}
}

// NewRange returns an explicit-range spec from raw user input.
func NewRange(start, end string) Spec {
	return Spec{Mode: ModeRange, Start: start, End: end}
}

// NewRolling parses raw user input for a rolling window. Any parse failure is
// returned so the caller can keep the previous view.
func NewRolling(offset, duration string, unit Unit) (Spec, error) {
	off, err := strconv.Atoi(strings.TrimSpace(offset))
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrBadOffset, offset)
	}
	d, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrBadDuration, duration)
	}
	if d < 0 {
		return Spec{}, fmt.Errorf("%w: %d is negative", ErrBadDuration, d)
	}
	if d > unit.MaxCount() {
		return Spec{}, fmt.Errorf("%w: %d %s is too long", ErrBadDuration, d, unit)
	}
	return Spec{Mode: ModeRolling, Offset: off, Duration: d, Unit: unit}, nil
}

// View is the result of filtering: the kept row indices in file order plus
// the window that produced them.
type View struct {
	Dataset *dataset.Dataset
	Rows    []int
	Spec    Spec
	Start   time.Time
	End     time.Time
	Bounded bool // Start/End are meaningful
}

func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Rows)
}

// Filter applies spec to ds.
func Filter(ds *dataset.Dataset, spec Spec) (*View, error) {
	view := &View{Dataset: ds, Spec: spec}
	if ds == nil {
		return view, nil
	}

	switch spec.Mode {
	case ModeFull:
		view.Rows = make([]int, ds.Len())
		for i := range view.Rows {
			view.Rows[i] = i
		}
		view.Start, view.End, view.Bounded = ds.Bounds()
		return view, nil

	case ModeRange:
		min, max, ok := ds.Bounds()
		if !ok {
			return view, nil
		}
		view.Start = parseBound(spec.Start, min)
		view.End = parseBound(spec.End, max)
		view.Bounded = true

	case ModeRolling:
		if spec.Duration < 0 {
			return nil, fmt.Errorf("%w: %d is negative", ErrBadDuration, spec.Duration)
		}
		if ds.Len() == 0 {
			return view, nil
		}
		anchor := ClampOffset(spec.Offset, ds.Len())
		start, ok := ds.Time(anchor)
		if !ok {
			return view, nil
		}
		view.Start = start
		view.End = start.Add(spec.Unit.Duration(spec.Duration))
		view.Bounded = true

	default:
		return nil, fmt.Errorf("unknown window mode %d", spec.Mode)
	}

	view.Rows = rowsWithin(ds, view.Start, view.End)
	return view, nil
}

// ClampOffset clamps an anchor offset into [0, n-1].
func ClampOffset(offset, n int) int {
	if n <= 0 || offset < 0 {
		return 0
	}
	if offset > n-1 {
		return n - 1
	}
	return offset
}

func parseBound(raw string, fallback time.Time) time.Time {
	ts, ok := dataset.ParseTimestamp(raw, fallback.Location())
	if !ok {
		return fallback
	}
	return ts
}

func rowsWithin(ds *dataset.Dataset, start, end time.Time) []int {
	rows := make([]int, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		ts, ok := ds.Time(i)
		if !ok {
			continue
		}
		if ts.Before(start) || ts.After(end) {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

// Label describes the view for status lines.
func (v *View) Label() string {
	if v == nil {
		return "Window: n/a"
	}
	if v.Spec.Mode == ModeFull {
		return "Window: full dataset"
	}
	if !v.Bounded {
		return fmt.Sprintf("Window: %s (no timestamps)", v.Spec.Mode)
	}
	return fmt.Sprintf("Window: %s - %s", v.Start.Format(InputLayout), v.End.Format(InputLayout))
}
