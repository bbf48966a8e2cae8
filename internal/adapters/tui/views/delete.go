package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recall/internal/adapters/prompt"
	"recall/internal/adapters/tui/styles"
	"recall/internal/application"
	"recall/internal/application/commands"
	"recall/internal/domain"
	"recall/internal/ports"
)

// DeleteKeyMap defines key bindings for the delete view
type DeleteKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var DeleteKeys = DeleteKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// DeleteModel previews a subtree and deletes it once YES is typed
type DeleteModel struct {
	ViewState
	store   ports.NoteStore
	note    domain.Note
	entries []string
	ready   bool // preview loaded or failed
	input   textinput.Model
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(store ports.NoteStore) *DeleteModel {
	ti := textinput.New()
	ti.Placeholder = application.ConfirmationWord
	ti.CharLimit = 16
	ti.Width = 10

	return &DeleteModel{
		store: store,
		input: ti,
	}
}

type previewLoadedMsg struct {
	entries []string
}

// SetTarget selects the note to delete and loads the preview
func (m *DeleteModel) SetTarget(note domain.Note) tea.Cmd {
	m.note = note
	m.entries = nil
	m.ready = false
	m.ClearMessage()
	m.input.SetValue("")

	return func() tea.Msg {
		_, entries, err := commands.NewDeleteCommand(m.store, nil, note.Path).Preview(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return previewLoadedMsg{entries}
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return m.input.Focus()
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case previewLoadedMsg:
		m.entries = msg.entries
		m.ready = true
		return m, nil

	case errMsg:
		m.ready = true
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DeleteKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{Message: "Cancelled, nothing was deleted"} }
		case key.Matches(msg, DeleteKeys.Submit):
			if !m.ready {
				return m, nil
			}
			return m, m.doDelete(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// answer is a ports.Confirmer holding what the user typed
type answer string

func (a answer) Confirm(_ []string) (bool, error) {
	return prompt.IsConfirmed(string(a)), nil
}

func (m *DeleteModel) doDelete(typed string) tea.Cmd {
	path := m.note.Path
	return func() tea.Msg {
		result, err := commands.NewDeleteCommand(m.store, answer(typed), path).Execute(context.Background())
		if err != nil {
			return SwitchToBrowserMsg{Message: err.Error(), MessageErr: true}
		}
		return SwitchToBrowserMsg{Message: result.Message}
	}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete " + m.note.Path.String()))
	b.WriteString("\n\n")
	b.WriteString(styles.ErrorMsg.Render("This action cannot be undone!"))
	b.WriteString("\n\n")

	if !m.ready {
		b.WriteString(styles.MutedText.Render("Loading..."))
		b.WriteString("\n")
	}
	for _, e := range m.entries {
		b.WriteString(styles.MutedText.Render("- " + e))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.WarningMsg.Render(application.ConfirmationPrompt))
	b.WriteString("\n")
	b.WriteString(styles.InputField.Render(m.input.View()))
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(DeleteKeys.Submit, DeleteKeys.Cancel))

	return styles.App.Render(b.String())
}
