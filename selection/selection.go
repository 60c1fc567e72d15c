// Package selection tracks which columns each chart panel plots and how each
// panel scales its y-axis.
package selection

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinPanels = 1
	MaxPanels = 5
)

type AxisMode int

const (
	AxisAuto AxisMode = iota
	AxisFixed
)

func (a AxisMode) String() string {
	if a == AxisFixed {
		return "fixed"
	}
	return "auto"
}

// Panel is one independently configured chart area.
type Panel struct {
	selected map[string]bool
	Axis     AxisMode
	MinText  string
	MaxText  string
}

// Default bounds shown in the fixed-axis inputs of a fresh panel.
const (
	DefaultMinText = "0"
	DefaultMaxText = "100"
)

func newPanel() *Panel {
	return &Panel{
		selected: make(map[string]bool),
		Axis:     AxisAuto,
		MinText:  DefaultMinText,
		MaxText:  DefaultMaxText,
	}
}

// YRange returns the fixed bounds when the panel is in fixed mode and both
// bounds parse with min < max. Anything else means automatic scaling.
func (p *Panel) YRange() (min, max float64, fixed bool) {
	if p == nil || p.Axis != AxisFixed {
		return 0, 0, false
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(p.MinText), 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(p.MaxText), 64)
	if err != nil {
		return 0, 0, false
	}
	if lo >= hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// Registry holds the candidate columns and the per-panel state.
// Panels never share selection state.
type Registry struct {
	columns []string
	panels  []*Panel
}

// New builds a registry with panelCount empty panels, clamped to
// [MinPanels, MaxPanels].
func New(columns []string, panelCount int) *Registry {
	r := &Registry{}
	r.rebuild(columns, clampPanels(panelCount))
	return r
}

func clampPanels(n int) int {
	if n < MinPanels {
		return MinPanels
	}
	if n > MaxPanels {
		return MaxPanels
	}
	return n
}

func (r *Registry) rebuild(columns []string, panelCount int) {
	r.columns = append([]string(nil), columns...)
	r.panels = make([]*Panel, panelCount)
	for i := range r.panels {
		r.panels[i] = newPanel()
	}
}

func (r *Registry) Columns() []string {
	return append([]string(nil), r.columns...)
}

func (r *Registry) PanelCount() int {
	return len(r.panels)
}

// SetPanelCount rebuilds every panel, discarding all prior selections.
func (r *Registry) SetPanelCount(n int) error {
	if n < MinPanels || n > MaxPanels {
		return fmt.Errorf("panel count %d outside %d..%d", n, MinPanels, MaxPanels)
	}
	r.rebuild(r.columns, n)
	return nil
}

// Reset adopts columns and rebuilds every panel, keeping the panel count.
func (r *Registry) Reset(columns []string) {
	r.rebuild(columns, len(r.panels))
}

// Sync adopts a new column set. Selections survive only when the set is
// unchanged; it reports whether the panels were rebuilt.
func (r *Registry) Sync(columns []string) bool {
	if equalColumns(r.columns, columns) {
		return false
	}
	r.rebuild(columns, len(r.panels))
	return true
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Panel returns the panel at index i.
func (r *Registry) Panel(i int) (*Panel, error) {
	if i < 0 || i >= len(r.panels) {
		return nil, fmt.Errorf("panel %d out of range (have %d)", i, len(r.panels))
	}
	return r.panels[i], nil
}

func (r *Registry) hasColumn(col string) bool {
	for _, c := range r.columns {
		if c == col {
			return true
		}
	}
	return false
}

// Set marks col as included or not in panel i.
func (r *Registry) Set(i int, col string, on bool) error {
	p, err := r.Panel(i)
	if err != nil {
		return err
	}
	if !r.hasColumn(col) {
		return fmt.Errorf("unknown column %q", col)
	}
	if on {
		p.selected[col] = true
	} else {
		delete(p.selected, col)
	}
	return nil
}

// Toggle flips col in panel i and returns the new state.
func (r *Registry) Toggle(i int, col string) (bool, error) {
	on := !r.IsSelected(i, col)
	if err := r.Set(i, col, on); err != nil {
		return false, err
	}
	return on, nil
}

func (r *Registry) IsSelected(i int, col string) bool {
	p, err := r.Panel(i)
	if err != nil {
		return false
	}
	return p.selected[col]
}

// Selected returns the columns included in panel i, in column order.
func (r *Registry) Selected(i int) []string {
	p, err := r.Panel(i)
	if err != nil {
		return nil
	}
	var out []string
	for _, c := range r.columns {
		if p.selected[c] {
			out = append(out, c)
		}
	}
	return out
}

// SelectedCount returns the number of included columns across all panels.
func (r *Registry) SelectedCount() int {
	n := 0
	for _, p := range r.panels {
		n += len(p.selected)
	}
	return n
}

func (r *Registry) SetAxisMode(i int, mode AxisMode) error {
	p, err := r.Panel(i)
	if err != nil {
		return err
	}
	p.Axis = mode
	return nil
}

// SetAxisBounds stores the raw min/max text; it is only parsed on render.
func (r *Registry) SetAxisBounds(i int, min, max string) error {
	p, err := r.Panel(i)
	if err != nil {
		return err
	}
	p.MinText = min
	p.MaxText = max
	return nil
}

func (r *Registry) YRange(i int) (min, max float64, fixed bool) {
	p, err := r.Panel(i)
	if err != nil {
		return 0, 0, false
	}
	return p.YRange()
}
