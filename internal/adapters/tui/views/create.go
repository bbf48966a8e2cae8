package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recall/internal/adapters/tui/styles"
	"recall/internal/application/commands"
	"recall/internal/ports"
)

// CreateKeyMap defines key bindings for the create view
type CreateKeyMap struct {
	Submit     key.Binding
	SubmitEdit key.Binding
	Cancel     key.Binding
}

var CreateKeys = CreateKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create"),
	),
	SubmitEdit: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "create and edit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// CreateModel asks for a note path and materializes it
type CreateModel struct {
	ViewState
	store ports.NoteStore
	input textinput.Model
}

// NewCreateModel creates a new create view model
func NewCreateModel(store ports.NoteStore) *CreateModel {
	ti := textinput.New()
	ti.Placeholder = "swift keypath"
	ti.CharLimit = 256
	ti.Width = 50

	return &CreateModel{
		store: store,
		input: ti,
	}
}

// SetParent prefills the input with a parent path
func (m *CreateModel) SetParent(parent []string) {
	m.ClearMessage()
	value := strings.Join(parent, " ")
	if value != "" {
		value += " "
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return m.input.Focus()
}

// CreateErrMsg indicates an error while creating a note
type CreateErrMsg struct {
	Err error
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CreateErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CreateKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, CreateKeys.Submit):
			return m, m.create(false)
		case key.Matches(msg, CreateKeys.SubmitEdit):
			return m, m.create(true)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *CreateModel) create(edit bool) tea.Cmd {
	segments := strings.Fields(m.input.Value())
	return func() tea.Msg {
		result, err := commands.NewCreateCommand(m.store, segments).Execute(context.Background())
		if err != nil {
			return CreateErrMsg{Err: err}
		}
		if edit {
			return OpenEditorMsg{Path: result.Note.File}
		}
		return SwitchToBrowserMsg{Message: "Created " + strings.Join(segments, " ")}
	}
}

// View renders the create view
func (m *CreateModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("New Note"))
	b.WriteString("\n\n")
	b.WriteString(styles.InputLabel.Render("Path (space separated):"))
	b.WriteString("\n")
	b.WriteString(styles.InputField.Render(m.input.View()))
	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}
	b.WriteString(RenderHelpLine(CreateKeys.Submit, CreateKeys.SubmitEdit, CreateKeys.Cancel))

	return styles.App.Render(b.String())
}
