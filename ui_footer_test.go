package main

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderFooterShowsState(t *testing.T) {
	t.Parallel()

	out := RenderFooter(100, FooterState{
		Mode:        "CHART",
		FileName:    "data.csv",
		AutoUpdate:  true,
		Interval:    2 * time.Second,
		Panels:      3,
		Rows:        3,
		TotalRows:   5,
		WindowLabel: "Window: full dataset",
	}, DefaultFooterStyles())

	plain := ansi.Strip(out)
	for _, want := range []string{"CHART", "▸ data.csv", "[PANELS: 3]", "[AUTO: every 2s]", "Rows 3/5", "Window: full dataset"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in footer %q", want, plain)
		}
	}
	lines := strings.Split(plain, "\n")
	if len(lines) != footerHeight {
		t.Fatalf("footer lines: got %d want %d", len(lines), footerHeight)
	}
	for i, l := range lines {
		if w := runeWidth(l); w != 100 {
			t.Fatalf("line %d width: got %d want 100", i, w)
		}
	}
}

func TestRenderFooterNoticeReplacesWindowLabel(t *testing.T) {
	t.Parallel()

	plain := ansi.Strip(RenderFooter(80, FooterState{
		WindowLabel:   "Window: full dataset",
		StatusMessage: "✓ Loaded",
	}, DefaultFooterStyles()))
	if !strings.Contains(plain, "✓ Loaded") || strings.Contains(plain, "Window: full dataset") {
		t.Fatalf("notice should replace the window label: %q", plain)
	}
	if !strings.Contains(plain, "(no file)") || !strings.Contains(plain, "[AUTO: off]") {
		t.Fatalf("expected defaults in %q", plain)
	}
}

func TestTruncatePlainUsesDisplayWidth(t *testing.T) {
	t.Parallel()

	if got := truncatePlain("日本語テキスト", 6); got != "日本語" {
		t.Fatalf("got %q want %q", got, "日本語")
	}
	if got := padRightPlain("ab", 4); got != "ab  " {
		t.Fatalf("got %q", got)
	}
	if RenderFooter(0, FooterState{}, DefaultFooterStyles()) != "" {
		t.Fatalf("zero width should render nothing")
	}
}
