package timewindow

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/andareed/siftly-plot/dataset"
)

// rows at 10:00:00, 10:01:00, <invalid>, 10:03:00, 10:04:00, 10:10:00
const windowCSV = `value;time
0;2024-03-01 10:00:00
1;2024-03-01 10:01:00
2;broken
3;2024-03-01 10:03:00
4;2024-03-01 10:04:00
5;2024-03-01 10:10:00
`

func loadWindowDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Parse(strings.NewReader(windowCSV), dataset.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return ds
}

func at(min, sec int) time.Time {
	return time.Date(2024, 3, 1, 10, min, sec, 0, time.UTC)
}

func TestFilterFullReturnsEveryRow(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	view, err := Filter(ds, Full())
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if got, want := view.Rows, []int{0, 1, 2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows mismatch: got %v want %v", got, want)
	}
	if !view.Start.Equal(at(0, 0)) || !view.End.Equal(at(10, 0)) {
		t.Fatalf("bounds mismatch: got %v - %v", view.Start, view.End)
	}
}

func TestFilterRangeIsInclusiveAndOrdered(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	view, err := Filter(ds, NewRange("2024-03-01 10:01:00", "2024-03-01 10:04:00"))
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if got, want := view.Rows, []int{1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows mismatch: got %v want %v", got, want)
	}
}

func TestFilterRangeKeepsExactlyRowsInside(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	starts := []time.Time{at(0, 0), at(0, 30), at(1, 0), at(3, 0), at(10, 0)}
	ends := []time.Time{at(0, 0), at(2, 0), at(4, 0), at(10, 0), at(11, 0)}
	for _, start := range starts {
		for _, end := range ends {
			if start.After(end) {
				continue
			}
			view, err := Filter(ds, NewRange(start.Format(InputLayout), end.Format(InputLayout)))
			if err != nil {
				t.Fatalf("Filter returned error: %v", err)
			}
			var want []int
			for i := 0; i < ds.Len(); i++ {
				ts, ok := ds.Time(i)
				if ok && !ts.Before(start) && !ts.After(end) {
					want = append(want, i)
				}
			}
			if len(want) == 0 && len(view.Rows) == 0 {
				continue
			}
			if !reflect.DeepEqual(view.Rows, want) {
				t.Fatalf("range %v-%v: got %v want %v", start, end, view.Rows, want)
			}
		}
	}
}

func TestFilterRangeUnparseableStartFallsBackToMinimum(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	view, err := Filter(ds, NewRange("not a date", "2024-03-01 10:01:00"))
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !view.Start.Equal(at(0, 0)) {
		t.Fatalf("start mismatch: got %v want %v", view.Start, at(0, 0))
	}
	if got, want := view.Rows, []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows mismatch: got %v want %v", got, want)
	}
}

func TestFilterRangeEmptyEndFallsBackToMaximum(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	view, err := Filter(ds, NewRange("2024-03-01 10:04:00", ""))
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !view.End.Equal(at(10, 0)) {
		t.Fatalf("end mismatch: got %v want %v", view.End, at(10, 0))
	}
	if got, want := view.Rows, []int{4, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows mismatch: got %v want %v", got, want)
	}
}

func TestFilterRangeStartAfterEndIsEmpty(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	view, err := Filter(ds, NewRange("2024-03-01 10:05:00", "2024-03-01 10:01:00"))
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if view.Len() != 0 {
		t.Fatalf("expected empty view, got %v", view.Rows)
	}
}

func TestFilterRolling(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	spec, err := NewRolling("1", "3", Minutes)
	if err != nil {
		t.Fatalf("NewRolling returned error: %v", err)
	}
	view, err := Filter(ds, spec)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if got, want := view.Rows, []int{1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows mismatch: got %v want %v", got, want)
	}
	if !view.Start.Equal(at(1, 0)) || !view.End.Equal(at(4, 0)) {
		t.Fatalf("window mismatch: got %v - %v", view.Start, view.End)
	}
}

func TestFilterRollingContainsAnchorAndStaysInside(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	for offset := 0; offset < ds.Len(); offset++ {
		anchor, ok := ds.Time(offset)
		if !ok {
			continue
		}
		for _, d := range []int{0, 1, 30, 600} {
			view, err := Filter(ds, Spec{Mode: ModeRolling, Offset: offset, Duration: d, Unit: Seconds})
			if err != nil {
				t.Fatalf("Filter returned error: %v", err)
			}
			found := false
			for _, row := range view.Rows {
				if row == offset {
					found = true
				}
				ts, _ := ds.Time(row)
				if ts.Before(anchor) || ts.After(anchor.Add(time.Duration(d)*time.Second)) {
					t.Fatalf("offset %d duration %d: row %d at %v is outside the window", offset, d, row, ts)
				}
			}
			if !found {
				t.Fatalf("offset %d duration %d: anchor row missing from %v", offset, d, view.Rows)
			}
		}
	}
}

func TestFilterRollingClampsOffset(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	view, err := Filter(ds, Spec{Mode: ModeRolling, Offset: 99, Duration: 1, Unit: Hours})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if got, want := view.Rows, []int{5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows mismatch: got %v want %v", got, want)
	}

	view, err = Filter(ds, Spec{Mode: ModeRolling, Offset: -4, Duration: 1, Unit: Minutes})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if got, want := view.Rows, []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows mismatch: got %v want %v", got, want)
	}
}

func TestFilterRollingInvalidAnchorIsEmpty(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	view, err := Filter(ds, Spec{Mode: ModeRolling, Offset: 2, Duration: 10, Unit: Minutes})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if view.Len() != 0 {
		t.Fatalf("expected empty view, got %v", view.Rows)
	}
}

func TestNewRollingRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		offset, duration string
		want             error
	}{
		{"x", "5", ErrBadOffset},
		{"0", "five", ErrBadDuration},
		{"0", "", ErrBadDuration},
		{"0", "-1", ErrBadDuration},
		{"0", "1.5", ErrBadDuration},
	}
	for _, tc := range cases {
		_, err := NewRolling(tc.offset, tc.duration, Minutes)
		if !errors.Is(err, tc.want) {
			t.Fatalf("NewRolling(%q, %q) error = %v want %v", tc.offset, tc.duration, err, tc.want)
		}
	}
}

func TestFilterEmptyDataset(t *testing.T) {
	t.Parallel()

	ds, err := dataset.Parse(strings.NewReader("value;time\n"), dataset.Options{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	for _, spec := range []Spec{Full(), NewRange("", ""), {Mode: ModeRolling, Duration: 5}} {
		view, err := Filter(ds, spec)
		if err != nil {
			t.Fatalf("Filter(%v) returned error: %v", spec.Mode, err)
		}
		if view.Len() != 0 {
			t.Fatalf("Filter(%v) expected no rows, got %v", spec.Mode, view.Rows)
		}
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Unit{"seconds": Seconds, "Min": Minutes, " h ": Hours} {
		got, err := ParseUnit(in)
		if err != nil || got != want {
			t.Fatalf("ParseUnit(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseUnit("days"); !errors.Is(err, ErrBadUnit) {
		t.Fatalf("expected ErrBadUnit, got %v", err)
	}
	if Hours.Next() != Seconds || Seconds.Next() != Minutes {
		t.Fatalf("unexpected unit cycle")
	}
}

func TestViewLabel(t *testing.T) {
	t.Parallel()

	ds := loadWindowDataset(t)
	view, _ := Filter(ds, NewRange("2024-03-01 10:01:00", "2024-03-01 10:04:00"))
	if got, want := view.Label(), "Window: 2024-03-01 10:01:00 - 2024-03-01 10:04:00"; got != want {
		t.Fatalf("label mismatch: got %q want %q", got, want)
	}
	full, _ := Filter(ds, Full())
	if got := full.Label(); got != "Window: full dataset" {
		t.Fatalf("label mismatch: got %q", got)
	}
}

func TestRollingDurationDoesNotOverflow(t *testing.T) {
	t.Parallel()

	if _, err := NewRolling("0", "3000000", Hours); !errors.Is(err, ErrBadDuration) {
		t.Fatalf("got %v want ErrBadDuration", err)
	}
	if got := Hours.Duration(3000000); got <= 0 {
		t.Fatalf("duration wrapped to %v", got)
	}

	ds, err := dataset.Parse(strings.NewReader("v;time\n1;2024-03-01 10:00:00\n2;2024-03-01 11:00:00\n"), dataset.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	view, err := Filter(ds, Spec{Mode: ModeRolling, Duration: 3000000, Unit: Hours})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !view.End.After(view.Start) {
		t.Fatalf("end %v before start %v", view.End, view.Start)
	}
	if got, want := view.Rows, []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows: got %v want %v", got, want)
	}
}
