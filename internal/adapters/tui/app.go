package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"recall/internal/adapters/tui/views"
	"recall/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewCreate
	ViewDelete
	ViewViewer
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store  ports.NoteStore
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	create  *views.CreateModel
	delete  *views.DeleteModel
	viewer  *views.ViewerModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. A nil editor disables editing.
func NewApp(store ports.NoteStore, titles ports.TitleExtractor, ed ports.EditorOpener) *App {
	return &App{
		store:   store,
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(store, titles),
		create:  views.NewCreateModel(store),
		delete:  views.NewDeleteModel(store),
		viewer:  views.NewViewerModel(store),
		help:    views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.viewer.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.SetParent(msg.Parent)
		return a, a.create.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		return a, tea.Batch(a.delete.Init(), a.delete.SetTarget(msg.Note))

	case views.SwitchToViewerMsg:
		a.state = ViewViewer
		return a, a.viewer.Open(msg.Note)

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		a.browser.SetMessage(msg.Message, msg.MessageErr)
		return a, a.browser.Reload()

	case views.OpenEditorMsg:
		a.state = ViewBrowser
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.browser.SetMessage(msg.err.Error(), true)
		}
		return a, a.browser.Reload()
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewViewer:
		_, cmd = a.viewer.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return a.browser.Reload()
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
	case ViewCreate:
		return a.create.View()
	case ViewDelete:
		return a.delete.View()
	case ViewViewer:
		return a.viewer.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
