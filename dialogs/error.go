package dialogs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-plot/logging"
)

// Error blocks the UI until the user acknowledges a failed operation.
type Error struct {
	title   string
	err     error
	visible bool
}

var errorTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

func NewErrorDialog(title string, err error) *Error {
	return &Error{title: title, err: err, visible: true}
}

func (d Error) Init() tea.Cmd { return nil }

func (d *Error) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", " ":
			logging.Debug("ErrorDialog: dismissed")
			d.visible = false
		}
	}
	return d, nil
}

func (d Error) View() string {
	if !d.visible {
		return ""
	}
	// box padding takes 4 columns
	body := wordwrap.String(d.Message(), dialogWidth-4)
	content := fmt.Sprintf("%s\n\n%s\n\n%s", errorTitle.Render("× "+d.title), body, hint("enter/esc to dismiss"))
	return boxStyle().Render(content)
}

func (d Error) Message() string {
	if d.err == nil {
		return "unknown error"
	}
	return d.err.Error()
}

func (d *Error) Show() { d.visible = true }
func (d *Error) Hide() { d.visible = false }

func (d *Error) Focus() tea.Cmd { return nil }
func (d *Error) Blur()          {}
func (d Error) IsVisible() bool { return d.visible }
