package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"recall/internal/adapters/tui/styles"
	"recall/internal/application/commands"
	"recall/internal/domain"
	"recall/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	View   key.Binding
	New    key.Binding
	Delete key.Binding
	Copy   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter/e", "edit"),
	),
	View: key.NewBinding(
		key.WithKeys("v", "l", "right"),
		key.WithHelp("v", "read"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel lists every note in the store, parents before children
type BrowserModel struct {
	ViewState
	store  ports.NoteStore
	titles ports.TitleExtractor
	notes  []domain.Note
	cursor int
	loaded bool
	copy   func(string) error
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store ports.NoteStore, titles ports.TitleExtractor) *BrowserModel {
	return &BrowserModel{
		store:  store,
		titles: titles,
		copy:   clipboard.WriteAll,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadNotes
}

func (m *BrowserModel) loadNotes() tea.Msg {
	notes, err := commands.NewListCommand(m.store, m.titles, nil).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return notesLoadedMsg{notes}
}

type notesLoadedMsg struct {
	notes []domain.Note
}

type errMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case notesLoadedMsg:
		m.notes = msg.notes
		m.loaded = true
		m.clampCursor()
		return m, nil

	case errMsg:
		m.loaded = true
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.notes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if note, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenEditorMsg{Path: note.File} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.View):
			if note, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToViewerMsg{Note: note} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			var parent domain.NotePath
			if note, ok := m.Selected(); ok {
				parent = note.Path
			}
			return m, func() tea.Msg { return SwitchToCreateMsg{Parent: parent} }

		case key.Matches(msg, BrowserKeys.Delete):
			if note, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToDeleteMsg{Note: note} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if note, ok := m.Selected(); ok {
				if err := m.copy(note.File); err != nil {
					m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
				} else {
					m.SetMessage("Copied "+note.File, false)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

// Selected returns the note under the cursor
func (m *BrowserModel) Selected() (domain.Note, bool) {
	if m.cursor >= 0 && m.cursor < len(m.notes) {
		return m.notes[m.cursor], true
	}
	return domain.Note{}, false
}

func (m *BrowserModel) clampCursor() {
	if m.cursor >= len(m.notes) {
		m.cursor = len(m.notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Recall"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.store.Root()))
	b.WriteString("\n\n")

	if len(m.notes) == 0 {
		b.WriteString(styles.MutedText.Render("No notes yet. Press n to create one."))
		b.WriteString("\n")
	}

	for i, note := range m.visibleNotes() {
		b.WriteString(m.renderNote(note, i+m.offset() == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Edit, BrowserKeys.View, BrowserKeys.New,
		BrowserKeys.Delete, BrowserKeys.Copy, BrowserKeys.Help, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

// listHeight is the number of rows available for notes
func (m *BrowserModel) listHeight() int {
	// title, subtitle, blank lines, message and help line
	h := m.Height - 10
	if h < 1 {
		return len(m.notes)
	}
	return h
}

func (m *BrowserModel) offset() int {
	h := m.listHeight()
	if m.cursor < h {
		return 0
	}
	return m.cursor - h + 1
}

func (m *BrowserModel) visibleNotes() []domain.Note {
	start := m.offset()
	end := start + m.listHeight()
	if end > len(m.notes) {
		end = len(m.notes)
	}
	return m.notes[start:end]
}

func (m *BrowserModel) renderNote(note domain.Note, selected bool) string {
	depth := note.Path.Depth()
	indent := strings.Repeat("  ", max(depth-1, 0))
	name := note.Path.Last()

	var text string
	if selected {
		text = styles.NodeSelected.Render(name)
	} else {
		text = lipgloss.NewStyle().Foreground(styles.DepthColor(depth)).Render(name)
	}
	if note.Title != "" && note.Title != domain.Capitalize(name) {
		text += " " + styles.NodeTitle.Render(note.Title)
	}
	return indent + text
}

// Reload reloads the note list from disk
func (m *BrowserModel) Reload() tea.Cmd {
	m.loaded = false
	return m.loadNotes
}
