package dialogs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-plot/logging"
)

type (
	OpenConfirmedMsg struct{ Path string }
	OpenCanceledMsg  struct{}
)

// Open lets the user pick a CSV file.
type Open struct {
	picker  filepicker.Model
	visible bool
	note    string
}

const minPickerHeight = 6

// NewOpenDialog starts browsing in the directory of current, or the working
// directory when current is empty.
func NewOpenDialog(current string, height int) *Open {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = max(minPickerHeight, height)
	fp.CurrentDirectory = startDir(current)
	return &Open{picker: fp, visible: true}
}

func startDir(current string) string {
	if current = strings.TrimSpace(current); current != "" {
		if info, err := os.Stat(current); err == nil && info.IsDir() {
			return current
		}
		return filepath.Dir(current)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func (d *Open) Init() tea.Cmd { return d.picker.Init() }

func (d *Open) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok && (m.String() == "esc" || m.String() == "q") {
		logging.Debugf("OpenDialog: canceled")
		d.visible = false
		return d, func() tea.Msg { return OpenCanceledMsg{} }
	}

	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)

	if ok, path := d.picker.DidSelectFile(msg); ok {
		logging.Infof("OpenDialog: selected %q", path)
		d.visible = false
		return d, func() tea.Msg { return OpenConfirmedMsg{Path: path} }
	}
	if ok, path := d.picker.DidSelectDisabledFile(msg); ok {
		d.note = fmt.Sprintf("%s is not a CSV file", filepath.Base(path))
	}
	return d, cmd
}

func (d Open) View() string {
	if !d.visible {
		return ""
	}
	lines := []string{
		"Open CSV file",
		hint(d.picker.CurrentDirectory),
		"",
		d.picker.View(),
	}
	if d.note != "" {
		lines = append(lines, "", d.note)
	}
	lines = append(lines, "", hint("enter/→ open • ←/backspace up • esc cancel"))
	return boxStyle().Render(strings.Join(lines, "\n"))
}

func (d *Open) Show() { d.visible = true }
func (d *Open) Hide() { d.visible = false }

func (d *Open) Focus() tea.Cmd { return nil }
func (d *Open) Blur()          {}
func (d Open) IsVisible() bool { return d.visible }
