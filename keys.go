package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit           key.Binding
	OpenHelp       key.Binding
	OpenFile       key.Binding
	Plot           key.Binding
	AutoUpdate     key.Binding
	TableView      key.Binding
	CopyWindow     key.Binding
	AddPanel       key.Binding
	RemovePanel    key.Binding
	ToggleFull     key.Binding
	RollingMode    key.Binding
	RangeMode      key.Binding
	CycleUnit      key.Binding
	OffsetBack     key.Binding
	OffsetForward  key.Binding
	OffsetPageBack key.Binding
	OffsetPageFwd  key.Binding
	PanelPrev      key.Binding
	PanelNext      key.Binding
	ColumnUp       key.Binding
	ColumnDown     key.Binding
	ToggleColumn   key.Binding
	AxisMode       key.Binding
	NextInput      key.Binding
	PrevInput      key.Binding
	Blur           key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	OpenFile: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open CSV file"),
	),
	Plot: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply window and plot"),
	),
	AutoUpdate: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle auto-update"),
	),
	TableView: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "toggle table of window rows"),
	),
	CopyWindow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy window (table: row) to clipboard"),
	),
	AddPanel: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "add panel (clears selections)"),
	),
	RemovePanel: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "remove panel (clears selections)"),
	),
	ToggleFull: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "toggle full dataset"),
	),
	RollingMode: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rolling window"),
	),
	RangeMode: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "explicit start/end"),
	),
	CycleUnit: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "cycle duration unit"),
	),
	OffsetBack: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "anchor back one row"),
	),
	OffsetForward: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "anchor forward one row"),
	),
	OffsetPageBack: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "anchor back 10%"),
	),
	OffsetPageFwd: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("}", "anchor forward 10%"),
	),
	PanelPrev: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous panel"),
	),
	PanelNext: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next panel"),
	),
	ColumnUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous column"),
	),
	ColumnDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next column"),
	),
	ToggleColumn: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "toggle column in panel"),
	),
	AxisMode: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle y-axis auto/fixed"),
	),
	NextInput: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next input field"),
	),
	PrevInput: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous input field"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave input / table"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.OpenFile,
		k.Plot,
		k.AutoUpdate,
		k.AddPanel,
		k.RemovePanel,
		k.ToggleFull,
		k.RollingMode,
		k.RangeMode,
		k.CycleUnit,
		k.OffsetBack,
		k.OffsetForward,
		k.OffsetPageBack,
		k.OffsetPageFwd,
		k.PanelPrev,
		k.PanelNext,
		k.ColumnDown,
		k.ToggleColumn,
		k.AxisMode,
		k.NextInput,
		k.TableView,
		k.CopyWindow,
		k.Blur,
	}
}
