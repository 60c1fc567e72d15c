// Package chart renders stacked time-series line charts of a filtered dataset
// for the terminal.
package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-plot/timewindow"
)

// Panel is what one chart area should show.
type Panel struct {
	Title   string
	Columns []string
	Fixed   bool
	YMin    float64
	YMax    float64
}

const (
	panelChromeLines = 2 // title + legend
	minChartHeight   = 4
	yStep            = 2
	xStep            = 4
	brailleBlank     = '\u2800'
	gridRune         = '┈'
)

var (
	palette = []lipgloss.Color{
		lipgloss.Color("#50E3C2"),
		lipgloss.Color("#F6AE2D"),
		lipgloss.Color("#FF6B6B"),
		lipgloss.Color("#20B6D9"),
		lipgloss.Color("#C792EA"),
		lipgloss.Color("#9CCC65"),
		lipgloss.Color("#F78C6C"),
		lipgloss.Color("#82AAFF"),
	}

	titleStyle  = lipgloss.NewStyle().Bold(true)
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	legendEmpty = lipgloss.NewStyle().Faint(true)
)

// ColorFor returns the line colour used for the n-th column of the dataset.
func ColorFor(n int) lipgloss.Color {
	if n < 0 {
		n = 0
	}
	return palette[n%len(palette)]
}

// Render draws len(panels) charts stacked vertically. All panels share the
// view's time range; only the bottom one carries time labels.
func Render(view *timewindow.View, panels []Panel, width, height int) string {
	if len(panels) == 0 || width <= 0 {
		return ""
	}
	xMin, xMax := timeRange(view)
	chartH := (height-1)/len(panels) - panelChromeLines
	if chartH < minChartHeight {
		chartH = minChartHeight
	}

	blocks := make([]string, 0, len(panels)+1)
	for i, p := range panels {
		bottom := i == len(panels)-1
		blocks = append(blocks, renderPanel(view, p, width, chartH, xMin, xMax, bottom))
	}
	blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Center, labelStyle.Render("Time")))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderPanel(view *timewindow.View, p Panel, width, height int, xMin, xMax time.Time, bottom bool) string {
	series := make(map[string][]timeserieslinechart.TimePoint, len(p.Columns))
	for _, col := range p.Columns {
		series[col] = Points(view, col)
	}

	yMin, yMax := p.YMin, p.YMax
	if !p.Fixed {
		yMin, yMax = valueRange(series)
	}

	xLabels := timeLabelFormatter(xMax.Sub(xMin), xMin.Location())
	if !bottom {
		xLabels = func(int, float64) string { return "" }
	}

	c := timeserieslinechart.New(width, height,
		timeserieslinechart.WithTimeRange(xMin, xMax),
		timeserieslinechart.WithYRange(yMin, yMax),
		timeserieslinechart.WithXYSteps(xStep, yStep),
		timeserieslinechart.WithAxesStyles(axisStyle, labelStyle),
		timeserieslinechart.WithXLabelFormatter(xLabels),
		timeserieslinechart.WithYLabelFormatter(valueLabelFormatter(yMax-yMin)),
	)
	// the panel owns its ranges; pushed points must not widen them
	c.AutoMinX, c.AutoMaxX, c.AutoMinY, c.AutoMaxY = false, false, false, false

	for _, col := range p.Columns {
		c.SetDataSetStyle(col, lipgloss.NewStyle().Foreground(colorOf(view, col)))
		for _, pt := range series[col] {
			pt.Value = clampFloat(pt.Value, yMin, yMax)
			c.PushDataSet(col, pt)
		}
	}
	c.DrawBrailleAll()
	drawGrid(&c)

	title := p.Title
	if p.Fixed {
		title += fmt.Sprintf("  [y %g..%g]", p.YMin, p.YMax)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		legend(view, p.Columns, width),
		c.View(),
	)
}

// drawGrid adds horizontal grid lines at the y tick rows without
// overwriting plotted cells.
func drawGrid(c *timeserieslinechart.Model) {
	origin := c.Origin()
	for dy := yStep; dy <= c.GraphHeight(); dy += yStep {
		y := origin.Y - dy
		for dx := 1; dx <= c.GraphWidth(); dx++ {
			pt := canvas.Point{X: origin.X + dx, Y: y}
			r := c.Canvas.Cell(pt).Rune
			if r != runes.Null && r != brailleBlank && r != ' ' {
				continue
			}
			c.Canvas.SetCell(pt, canvas.NewCellWithStyle(gridRune, gridStyle))
		}
	}
}

func legend(view *timewindow.View, cols []string, width int) string {
	if len(cols) == 0 {
		return legendEmpty.Render("(no columns selected)")
	}
	items := make([]string, 0, len(cols))
	for _, col := range cols {
		items = append(items, lipgloss.NewStyle().Foreground(colorOf(view, col)).Render("━ "+col))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(items, "  "))
}

func colorOf(view *timewindow.View, col string) lipgloss.Color {
	if view == nil || view.Dataset == nil {
		return ColorFor(0)
	}
	return ColorFor(view.Dataset.ColumnIndex(col))
}

// Points returns the plottable (time, value) pairs of col in view order.
// Rows with an invalid timestamp or a non-numeric cell are skipped.
func Points(view *timewindow.View, col string) []timeserieslinechart.TimePoint {
	if view == nil || view.Dataset == nil {
		return nil
	}
	ds := view.Dataset
	out := make([]timeserieslinechart.TimePoint, 0, len(view.Rows))
	for _, row := range view.Rows {
		ts, ok := ds.Time(row)
		if !ok {
			continue
		}
		v, ok := ds.Float(row, col)
		if !ok {
			continue
		}
		out = append(out, timeserieslinechart.TimePoint{Time: ts, Value: v})
	}
	return out
}

// timeRange picks the shared x range. Chart x values have one second
// resolution, so the range is at least one second wide.
func timeRange(view *timewindow.View) (time.Time, time.Time) {
	var min, max time.Time
	ok := false
	if view != nil && view.Bounded {
		min, max, ok = view.Start, view.End, true
	} else if view != nil && view.Dataset != nil {
		min, max, ok = view.Dataset.Bounds()
	}
	if !ok {
		now := time.Now().Truncate(time.Second)
		return now, now.Add(time.Second)
	}
	if max.Sub(min) < time.Second {
		max = min.Add(time.Second)
	}
	return min, max
}

func valueRange(series map[string][]timeserieslinechart.TimePoint) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pts := range series {
		for _, pt := range pts {
			lo = math.Min(lo, pt.Value)
			hi = math.Max(hi, pt.Value)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if lo == hi {
		pad := math.Max(math.Abs(lo)*0.05, 1)
		return lo - pad, hi + pad
	}
	return lo, hi
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func timeLabelFormatter(span time.Duration, loc *time.Location) func(int, float64) string {
	layout := "2006-01-02"
	switch {
	case span <= time.Hour:
		layout = "15:04:05"
	case span <= 48*time.Hour:
		layout = "01-02 15:04"
	}
	return func(_ int, v float64) string {
		return time.Unix(int64(v), 0).In(loc).Format(layout)
	}
}

func valueLabelFormatter(span float64) func(int, float64) string {
	format := "%.0f"
	switch {
	case span < 1:
		format = "%.3f"
	case span < 10:
		format = "%.2f"
	case span < 100:
		format = "%.1f"
	}
	return func(_ int, v float64) string {
		return fmt.Sprintf(format, v)
	}
}
