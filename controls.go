package main

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/andareed/siftly-plot/timewindow"
)

type inputFocus int

const (
	focusNone inputFocus = iota
	focusDuration
	focusStart
	focusEnd
	focusYMin
	focusYMax
)

const (
	controlsWidth    = 38
	offsetPageFactor = 10 // {/} move the anchor by a tenth of the rows
	durationLimit    = 7
	boundLimit       = 32
	axisLimit        = 12
)

type controlInputs struct {
	duration textinput.Model
	start    textinput.Model
	end      textinput.Model
	yMin     textinput.Model
	yMax     textinput.Model
}

func newControlInputs() controlInputs {
	return controlInputs{
		duration: initControlInput("5", durationLimit, durationLimit),
		start:    initControlInput(timewindow.InputLayout, boundLimit, len(timewindow.InputLayout)),
		end:      initControlInput(timewindow.InputLayout, boundLimit, len(timewindow.InputLayout)),
		yMin:     initControlInput("min", axisLimit, 8),
		yMax:     initControlInput("max", axisLimit, 8),
	}
}

func initControlInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	ti.Prompt = ""
	return ti
}

func (c *controlInputs) field(f inputFocus) *textinput.Model {
	switch f {
	case focusDuration:
		return &c.duration
	case focusStart:
		return &c.start
	case focusEnd:
		return &c.end
	case focusYMin:
		return &c.yMin
	case focusYMax:
		return &c.yMax
	default:
		return nil
	}
}

func (c *controlInputs) all() []*textinput.Model {
	return []*textinput.Model{&c.duration, &c.start, &c.end, &c.yMin, &c.yMax}
}
