package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is the common interface all dialogs (Open, Error, Help) implement.
// The model forwards key presses to the active dialog and drops it once it
// is no longer visible.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}

const dialogWidth = 60

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")). // light border
		BorderBackground(lipgloss.Color("236")). // match the overlay
		Padding(1, 2).
		Width(dialogWidth)
}

func hint(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}
