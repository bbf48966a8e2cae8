package views

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recall/internal/adapters/filesystem"
	"recall/internal/adapters/markdown"
	"recall/internal/domain"
)

func setupStore(t *testing.T) (*filesystem.Store, string) {
	t.Helper()
	root := t.TempDir()
	store := filesystem.NewStore(root)
	for _, p := range []domain.NotePath{{"rust"}, {"swift", "keypath"}} {
		_, err := store.EnsureMaterialized(p)
		require.NoError(t, err)
	}
	return store, root
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedBrowser(t *testing.T) (*BrowserModel, string) {
	t.Helper()
	store, root := setupStore(t)
	m := NewBrowserModel(store, markdown.NewTitleExtractor())
	m.Update(m.Init()())
	return m, root
}

func TestBrowser_ListsNotesInWalkOrder(t *testing.T) {
	m, _ := loadedBrowser(t)

	require.Len(t, m.notes, 3)
	assert.Equal(t, domain.NotePath{"rust"}, m.notes[0].Path)
	assert.Equal(t, domain.NotePath{"swift"}, m.notes[1].Path)
	assert.Equal(t, domain.NotePath{"swift", "keypath"}, m.notes[2].Path)
	assert.Equal(t, "Keypath", m.notes[2].Title)
}

func TestBrowser_Navigation(t *testing.T) {
	m, _ := loadedBrowser(t)

	m.Update(runes("j"))
	m.Update(runes("j"))
	m.Update(runes("j"))
	note, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "keypath", note.Path.Last())

	m.Update(runes("k"))
	note, _ = m.Selected()
	assert.Equal(t, "swift", note.Path.Last())
}

func TestBrowser_Actions(t *testing.T) {
	m, root := loadedBrowser(t)

	_, cmd := m.Update(runes("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenEditorMsg{Path: filepath.Join(root, "rust", "rust.md")}, cmd())

	_, cmd = m.Update(runes("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchToCreateMsg{Parent: domain.NotePath{"rust"}}, cmd())

	_, cmd = m.Update(runes("d"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(SwitchToDeleteMsg)
	require.True(t, ok)
	assert.Equal(t, domain.NotePath{"rust"}, msg.Note.Path)
}

func TestBrowser_CopyPath(t *testing.T) {
	m, root := loadedBrowser(t)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m.Update(runes("y"))

	assert.Equal(t, filepath.Join(root, "rust", "rust.md"), copied)
	assert.False(t, m.MessageErr)
}

func TestCreate_MaterializesNote(t *testing.T) {
	store, root := setupStore(t)
	m := NewCreateModel(store)
	m.SetParent([]string{"swift"})
	m.Init()

	m.Update(runes("generics"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SwitchToBrowserMsg)
	require.True(t, ok)
	assert.Equal(t, "Created swift generics", msg.Message)

	content, err := os.ReadFile(filepath.Join(root, "swift", "generics", "generics.md"))
	require.NoError(t, err)
	assert.Equal(t, "## Generics\n", string(content))
}

func TestCreate_InvalidPathShowsError(t *testing.T) {
	store, _ := setupStore(t)
	m := NewCreateModel(store)
	m.SetParent(nil)
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.True(t, m.MessageErr)
}

func TestDelete_RequiresTypedConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		typed   string
		removed bool
		message string
	}{
		{name: "confirmed", typed: "YES", removed: true, message: "Deleted swift"},
		{name: "declined", typed: "no", removed: false, message: "Cancelled, nothing was deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, root := setupStore(t)
			m := NewDeleteModel(store)
			m.Init()
			note := domain.Note{Path: domain.NotePath{"swift"}}

			m.Update(m.SetTarget(note)())
			assert.Equal(t, []string{
				filepath.Join("swift", "swift.md"),
				filepath.Join("swift", "keypath"),
				filepath.Join("swift", "keypath", "keypath.md"),
			}, m.entries)

			m.Update(runes(tt.typed))
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)

			msg, ok := cmd().(SwitchToBrowserMsg)
			require.True(t, ok)
			assert.Equal(t, tt.message, msg.Message)

			_, err := os.Stat(filepath.Join(root, "swift"))
			assert.Equal(t, tt.removed, os.IsNotExist(err))
		})
	}
}

func TestDelete_IgnoresSubmitUntilPreviewLoaded(t *testing.T) {
	store, root := setupStore(t)
	m := NewDeleteModel(store)
	m.Init()
	preview := m.SetTarget(domain.Note{Path: domain.NotePath{"swift"}})

	m.Update(runes("YES"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.DirExists(t, filepath.Join(root, "swift"))

	m.Update(preview())
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SwitchToBrowserMsg)
	require.True(t, ok)
	assert.Equal(t, "Deleted swift", msg.Message)
	assert.NoDirExists(t, filepath.Join(root, "swift"))
}
