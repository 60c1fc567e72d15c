package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-plot/clipboard"
	"github.com/andareed/siftly-plot/config"
	"github.com/andareed/siftly-plot/dataset"
	"github.com/andareed/siftly-plot/dialogs"
	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/poller"
	"github.com/andareed/siftly-plot/selection"
	"github.com/andareed/siftly-plot/timewindow"
)

type mode int

const (
	modeChart mode = iota
	modeTable
)

// swapped in tests
var copyToClipboard = clipboard.Copy

type model struct {
	app    appState
	ui     uiState
	inputs controlInputs

	table     table.Model
	tableCols []ColumnMeta
	tableRows []tableRow

	activeDialog dialogs.Dialog
	initialPath  string

	terminalWidth  int
	terminalHeight int
	ready          bool
}

func newModel(cfg config.Config, opts dataset.Options, path string) *model {
	m := &model{
		app: appState{
			loadOpts: opts,
			registry: selection.New(nil, cfg.Panels),
			spec:     timewindow.Full(),
			poller:   poller.New(cfg.RefreshInterval),
		},
		ui: uiState{
			useFull:    cfg.Window.Full,
			windowMode: timewindow.ModeRolling,
			unit:       cfg.WindowUnit(),
		},
		inputs:      newControlInputs(),
		table:       newDataTable(),
		initialPath: path,
	}
	m.inputs.duration.SetValue(strconv.Itoa(cfg.Window.Duration))
	m.loadAxisInputs()
	return m
}

func (m *model) Init() tea.Cmd {
	if m.initialPath == "" {
		return nil
	}
	return loadCmd(m.initialPath, m.app.loadOpts)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
		m.layoutTable()
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case loadedMsg:
		return m, m.handleLoaded(msg)

	case poller.TickMsg:
		return m, m.handleTick(msg)

	case dialogs.OpenConfirmedMsg:
		m.activeDialog = nil
		return m, loadCmd(msg.Path, m.app.loadOpts)

	case dialogs.OpenCanceledMsg:
		m.activeDialog = nil
		return m, nil

	case tea.KeyMsg:
		if m.activeDialog != nil {
			return m.updateDialog(msg)
		}
		return m.handleKey(msg)
	}

	// anything else belongs to the dialog, e.g. file picker directory reads
	if m.activeDialog != nil {
		return m.updateDialog(msg)
	}
	return m, nil
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	d, cmd := m.activeDialog.Update(msg)
	if d.IsVisible() {
		m.activeDialog = d
	} else {
		m.activeDialog = nil
	}
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}
	if m.ui.focus != focusNone {
		return m.handleInputKey(msg)
	}
	if m.ui.mode == modeTable {
		return m.handleTableKey(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, m.quit()
	case key.Matches(msg, Keys.OpenHelp):
		m.openHelp()
		return m, nil
	case key.Matches(msg, Keys.OpenFile):
		return m, m.openFileDialog()
	case key.Matches(msg, Keys.Plot):
		return m, m.applyWindow()
	case key.Matches(msg, Keys.AutoUpdate):
		return m, m.toggleAutoUpdate()
	case key.Matches(msg, Keys.TableView):
		m.ui.mode = modeTable
		m.refreshTable()
		return m, nil
	case key.Matches(msg, Keys.CopyWindow):
		return m, m.copyWindow()

	case key.Matches(msg, Keys.AddPanel):
		return m, m.changePanelCount(1)
	case key.Matches(msg, Keys.RemovePanel):
		return m, m.changePanelCount(-1)
	case key.Matches(msg, Keys.PanelPrev):
		m.movePanel(-1)
		return m, nil
	case key.Matches(msg, Keys.PanelNext):
		m.movePanel(1)
		return m, nil
	case key.Matches(msg, Keys.ColumnUp):
		m.moveColumn(-1)
		return m, nil
	case key.Matches(msg, Keys.ColumnDown):
		m.moveColumn(1)
		return m, nil
	case key.Matches(msg, Keys.ToggleColumn):
		return m, m.toggleColumn()
	case key.Matches(msg, Keys.AxisMode):
		return m, m.toggleAxisMode()

	case key.Matches(msg, Keys.ToggleFull):
		return m, m.toggleFull()
	case key.Matches(msg, Keys.RollingMode):
		return m, m.setWindowMode(timewindow.ModeRolling)
	case key.Matches(msg, Keys.RangeMode):
		return m, m.setWindowMode(timewindow.ModeRange)
	case key.Matches(msg, Keys.CycleUnit):
		return m, m.cycleUnit()
	case key.Matches(msg, Keys.OffsetBack):
		return m, m.moveOffset(-1)
	case key.Matches(msg, Keys.OffsetForward):
		return m, m.moveOffset(1)
	case key.Matches(msg, Keys.OffsetPageBack):
		return m, m.moveOffset(-m.offsetPage())
	case key.Matches(msg, Keys.OffsetPageFwd):
		return m, m.moveOffset(m.offsetPage())

	case key.Matches(msg, Keys.NextInput):
		return m, m.cycleFocus(1)
	case key.Matches(msg, Keys.PrevInput):
		return m, m.cycleFocus(-1)
	}
	return m, nil
}

func (m *model) quit() tea.Cmd {
	m.app.poller.Stop()
	logging.Infof("quit")
	return tea.Quit
}

func (m *model) openHelp() {
	m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
}

func (m *model) openFileDialog() tea.Cmd {
	// leave room for the dialog chrome
	d := dialogs.NewOpenDialog(m.app.path, m.terminalHeight-14)
	m.activeDialog = d
	return d.Init()
}

func (m *model) copyWindow() tea.Cmd {
	text, ok := m.windowClipboardText()
	if !ok {
		return m.startNotice("No time window to copy", noticeWarn, noticeDuration)
	}
	if err := copyToClipboard(text); err != nil {
		logging.Warnf("copy window: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice("Window copied", noticeSuccess, noticeDuration)
}

// contentSize is the area inside the app margins above the footer.
func (m *model) contentSize() (int, int) {
	w := m.terminalWidth - appstyle.GetHorizontalMargins()
	h := m.terminalHeight - appstyle.GetVerticalMargins() - footerHeight
	return w, h
}
