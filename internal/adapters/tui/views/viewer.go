package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"recall/internal/adapters/tui/styles"
	"recall/internal/application/commands"
	"recall/internal/domain"
	"recall/internal/ports"
)

// ViewerKeyMap defines key bindings for the viewer
type ViewerKeyMap struct {
	Edit  key.Binding
	Close key.Binding
}

var ViewerKeys = ViewerKeyMap{
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "h", "left"),
		key.WithHelp("esc/q", "back"),
	),
}

// ViewerModel shows a note followed by every note beneath it
type ViewerModel struct {
	ViewState
	store    ports.NoteStore
	note     domain.Note
	viewport viewport.Model
}

// NewViewerModel creates a new viewer
func NewViewerModel(store ports.NoteStore) *ViewerModel {
	return &ViewerModel{
		store:    store,
		viewport: viewport.New(80, 20),
	}
}

type contentLoadedMsg struct {
	content string
}

// Open loads the subtree of note into the viewport
func (m *ViewerModel) Open(note domain.Note) tea.Cmd {
	m.note = note
	m.ClearMessage()
	m.viewport.SetContent("Loading...")
	m.viewport.GotoTop()

	return func() tea.Msg {
		result, err := commands.NewReadCommand(m.store, note.Path).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return contentLoadedMsg{result.Output}
	}
}

// Init initializes the viewer
func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer
func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contentLoadedMsg:
		m.viewport.SetContent(msg.content)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ViewerKeys.Close):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, ViewerKeys.Edit):
			file := m.note.File
			return m, func() tea.Msg { return OpenEditorMsg{Path: file} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize updates the view and viewport dimensions
func (m *ViewerModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-8, 3)
}

// View renders the viewer
func (m *ViewerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.note.Path.String()))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	b.WriteString(RenderHelpLine(ViewerKeys.Edit, ViewerKeys.Close))

	return styles.App.Render(b.String())
}
