package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dexscan/internal/adapters/tui/views"
	"dexscan/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewReport ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state  ViewState
	report *views.ReportModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.VaultRepository, index ports.SearchIndex, ed ports.EditorOpener) *App {
	return &App{
		editor: ed,
		state:  ViewReport,
		report: views.NewReportModel(repo, index),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.report.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.report.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToReportMsg:
		a.state = ViewReport
		return a, nil

	case views.OpenEditorMsg:
		a.state = ViewReport
		return a, a.openEditor(msg.Path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewReport:
		_, cmd = a.report.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.report.View()
	}
}
