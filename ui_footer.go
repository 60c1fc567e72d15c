package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type FooterState struct {
	Mode     string
	FileName string

	AutoUpdate bool
	Interval   time.Duration
	Panels     int

	Rows      int
	TotalRows int

	WindowLabel   string
	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	LiveFG     lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color(accentColor),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		LiveFG:     lipgloss.Color("#50e3c2"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

const footerHeight = 2

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "CHART"
	}
	if st.Legend == "" {
		st.Legend = "(? help · o open · enter plot · p auto-update)"
	}
	st.Rows = max(st.Rows, 0)
	st.TotalRows = max(st.TotalRows, 0)

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1

	rightPlain := fmt.Sprintf(" Rows %d/%d", st.Rows, st.TotalRows)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)
	leftW := max(0, width-rightW)

	statusPlain := autoLabel(st)
	statusColW := min(runeWidth(statusPlain), max(0, leftW/2))

	modeColW := min(runeWidth(st.Mode)+2, leftW)
	fileColW := max(0, leftW-modeColW-statusColW-2*gapW)

	modeSeg := renderModeSegment(modeColW, st, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	statusSeg := renderAutoSegment(statusColW, statusPlain, st, styles)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + statusSeg
	leftWActual := modeColW + fileColW + statusColW + 2*gapW
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)
	leftW := max(0, width-legendW)

	msg := st.StatusMessage
	if msg == "" {
		msg = st.WindowLabel
	}
	msgPlain := padRightPlain(truncatePlain(msg, leftW), leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+st.Mode+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	filePlain := truncatePlain("▸ "+name, colW)
	pad := strings.Repeat(" ", colW-runeWidth(filePlain))
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + pad
}

func autoLabel(st FooterState) string {
	auto := "off"
	if st.AutoUpdate {
		auto = "every " + st.Interval.String()
	}
	return fmt.Sprintf("[PANELS: %d] · [AUTO: %s]", st.Panels, auto)
}

func renderAutoSegment(colW int, plain string, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	plain = padRightPlain(truncatePlain(plain, colW), colW)
	fg := styles.DimFG
	if st.AutoUpdate {
		fg = styles.LiveFG
	}
	return applyFG(plain, fg, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

// ansiColor emits a truecolor sequence for "#rrggbb" colours, the default
// colour for "", and nothing otherwise.
func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return ""
	}
	return termenv.CSI + termenv.RGBColor(s).Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}
