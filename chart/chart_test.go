package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-plot/dataset"
	"github.com/andareed/siftly-plot/timewindow"
)

const chartCSV = `A;time_stamp;B
1;2024-03-01 10:00:00;10
2;2024-03-01 10:01:00;x
3;bad;30
4;2024-03-01 10:03:00;40
`

func fullView(t *testing.T) *timewindow.View {
	t.Helper()
	ds, err := dataset.Parse(strings.NewReader(chartCSV), dataset.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	view, err := timewindow.Filter(ds, timewindow.Full())
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	return view
}

func TestPointsSkipInvalidRows(t *testing.T) {
	t.Parallel()

	view := fullView(t)
	if got := len(Points(view, "A")); got != 3 {
		t.Fatalf("A points: got %d want 3", got)
	}
	pts := Points(view, "B")
	if len(pts) != 2 {
		t.Fatalf("B points: got %d want 2", len(pts))
	}
	if pts[0].Value != 10 || pts[1].Value != 40 {
		t.Fatalf("B values mismatch: %+v", pts)
	}
	if Points(nil, "A") != nil {
		t.Fatalf("nil view should yield no points")
	}
}

func TestRenderEmptyPanelHasNoLines(t *testing.T) {
	t.Parallel()

	out := Render(fullView(t), []Panel{{Title: "Panel 1"}}, 60, 14)
	if !strings.Contains(out, "Panel 1") {
		t.Fatalf("missing panel title in %q", out)
	}
	if !strings.Contains(out, "(no columns selected)") {
		t.Fatalf("missing empty legend in %q", out)
	}
}

func TestRenderStacksPanelsWithLegends(t *testing.T) {
	t.Parallel()

	panels := []Panel{
		{Title: "Panel 1", Columns: []string{"A"}},
		{Title: "Panel 2", Columns: []string{"B"}, Fixed: true, YMin: 0, YMax: 20},
	}
	out := Render(fullView(t), panels, 80, 24)
	for _, want := range []string{"Panel 1", "Panel 2", "━ A", "━ B", "[y 0..20]", "Time"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered chart:\n%s", want, out)
		}
	}
	if strings.Index(out, "Panel 1") > strings.Index(out, "Panel 2") {
		t.Fatalf("panels out of order")
	}
	if w := lipgloss.Width(out); w > 80 {
		t.Fatalf("rendered width %d exceeds 80", w)
	}
}

func TestRenderWithoutDataset(t *testing.T) {
	t.Parallel()

	out := Render(nil, []Panel{{Title: "Panel 1", Columns: []string{"A"}}}, 40, 10)
	if !strings.Contains(out, "Panel 1") {
		t.Fatalf("missing panel title in %q", out)
	}
	if Render(nil, nil, 40, 10) != "" {
		t.Fatalf("no panels should render nothing")
	}
}

func TestValueRange(t *testing.T) {
	t.Parallel()

	view := fullView(t)
	lo, hi := valueRange(map[string][]timeserieslinechart.TimePoint{"A": Points(view, "A")})
	if lo != 1 || hi != 4 {
		t.Fatalf("range mismatch: got %v..%v want 1..4", lo, hi)
	}
	lo, hi = valueRange(nil)
	if lo != 0 || hi != 1 {
		t.Fatalf("empty range mismatch: got %v..%v", lo, hi)
	}
}

func TestTimeRangeIsAtLeastOneSecond(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	min, max := timeRange(&timewindow.View{Bounded: true, Start: start, End: start})
	if !min.Equal(start) || max.Sub(min) != time.Second {
		t.Fatalf("range mismatch: got %v..%v", min, max)
	}
}

func TestTimeLabelFormatter(t *testing.T) {
	t.Parallel()

	v := float64(time.Date(2024, 3, 1, 10, 5, 7, 0, time.UTC).Unix())
	if got := timeLabelFormatter(30*time.Minute, time.UTC)(0, v); got != "10:05:07" {
		t.Fatalf("short span label: got %q", got)
	}
	if got := timeLabelFormatter(5*time.Hour, time.UTC)(0, v); got != "03-01 10:05" {
		t.Fatalf("day span label: got %q", got)
	}
	if got := timeLabelFormatter(30*24*time.Hour, time.UTC)(0, v); got != "2024-03-01" {
		t.Fatalf("long span label: got %q", got)
	}
}
