package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	accentColor            = "#ff9f1c"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	controlsArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1).
			BorderTop(false).BorderBottom(false).BorderLeft(false)

	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(rowSelectedTextFGColor))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	focusedMarker = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Render("▸")
	activeOption  = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true)
	placeholder   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)
