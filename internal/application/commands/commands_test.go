package commands

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recall/internal/adapters/filesystem"
	"recall/internal/application"
	"recall/internal/domain"
)

type fakeEditor struct {
	opened []string
	err    error
}

func (e *fakeEditor) OpenFile(path string) error {
	e.opened = append(e.opened, path)
	return e.err
}

func (e *fakeEditor) Command(path string) (*exec.Cmd, error) {
	return exec.Command("true", path), nil
}

type scriptedConfirmer struct {
	answer bool
	err    error
	seen   []string
}

func (c *scriptedConfirmer) Confirm(entries []string) (bool, error) {
	c.seen = entries
	return c.answer, c.err
}

type headingTitles struct{}

func (headingTitles) Title(content []byte) string {
	return string(content)
}

func setupStore(t *testing.T) (*filesystem.Store, string) {
	t.Helper()
	root := t.TempDir()
	return filesystem.NewStore(root), root
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCreateCommand(t *testing.T) {
	store, root := setupStore(t)
	ctx := context.Background()

	result, err := NewCreateCommand(store, []string{"swift", "keypath"}).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "swift", "keypath", "keypath.md"), result.Note.File)
	assert.Equal(t, []string{
		"Created directory: " + filepath.Join(root, "swift"),
		"Created directory: " + filepath.Join(root, "swift", "keypath"),
		"Created file: " + filepath.Join(root, "swift", "swift.md"),
		"Created file: " + filepath.Join(root, "swift", "keypath", "keypath.md"),
	}, result.Lines)

	again, err := NewCreateCommand(store, []string{"swift", "keypath"}).Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, again.Lines)
	assert.Equal(t, result.Note.File, again.Note.File)
	assert.Contains(t, again.Message(), "already exists")
}

func TestCreateCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		wantErr  bool
	}{
		{name: "valid", segments: []string{"tmux", "layouts"}},
		{name: "no segments", segments: nil, wantErr: true},
		{name: "separator", segments: []string{"tmux/layouts"}, wantErr: true},
		{name: "parent escape", segments: []string{".."}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&CreateCommand{Segments: tt.segments}).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, application.ErrInvalidPath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEditCommand_OpensDeepestFile(t *testing.T) {
	store, root := setupStore(t)
	editor := &fakeEditor{}

	result, err := NewEditCommand(store, editor, []string{"rust", "release"}).Execute(context.Background())
	require.NoError(t, err)

	want := filepath.Join(root, "rust", "release", "release.md")
	assert.Equal(t, []string{want}, editor.opened)
	assert.Equal(t, want, result.Note.File)
}

func TestEditCommand_EditorFailureKeepsFiles(t *testing.T) {
	store, root := setupStore(t)
	editor := &fakeEditor{err: errors.New("exit status 1")}

	result, err := NewEditCommand(store, editor, []string{"rust"}).Execute(context.Background())

	assert.ErrorContains(t, err, "exit status 1")
	require.NotNil(t, result)
	assert.Len(t, result.Lines, 2)
	assert.FileExists(t, filepath.Join(root, "rust", "rust.md"))
}

func TestEditCommand_InvalidPathSkipsEditor(t *testing.T) {
	store, _ := setupStore(t)
	editor := &fakeEditor{}

	_, err := NewEditCommand(store, editor, nil).Execute(context.Background())

	assert.Error(t, err)
	assert.Empty(t, editor.opened)
}

func TestReadCommand(t *testing.T) {
	store, root := setupStore(t)
	write(t, filepath.Join(root, "vim", "vim.md"), "# Vim\n")
	write(t, filepath.Join(root, "vim", "surround", "surround.md"), "## Surround\n\ncs\"'\n")
	write(t, filepath.Join(root, "vim", "marks", "marks.md"), "## Marks")

	result, err := NewReadCommand(store, []string{"vim"}).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "# Vim\n\n## Marks\n\n## Surround\n\ncs\"'", result.Content)
	assert.Empty(t, result.Skipped)
}

func TestReadCommand_UnreadableFileReportedInPlace(t *testing.T) {
	store, root := setupStore(t)
	write(t, filepath.Join(root, "vim", "vim.md"), "# Vim")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vim", "broken"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.md"), filepath.Join(root, "vim", "broken", "broken.md")))
	write(t, filepath.Join(root, "vim", "marks", "marks.md"), "## Marks")

	result, err := NewReadCommand(store, []string{"vim"}).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Skipped, 1)
	assert.ErrorContains(t, result.Skipped[0], "broken.md")
	assert.Equal(t, "# Vim\n\nERROR: "+result.Skipped[0].Error()+"\n\n## Marks", result.Output)
	assert.Equal(t, "# Vim\n\n## Marks", result.Content)
}

func TestReadCommand_DeepestFirst(t *testing.T) {
	store, root := setupStore(t)
	write(t, filepath.Join(root, "vim", "vim.md"), "# Vim")
	write(t, filepath.Join(root, "vim", "surround", "surround.md"), "## Surround")

	cmd := NewReadCommand(store, []string{"vim"})
	cmd.DeepestFirst = true
	result, err := cmd.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "## Surround\n\n# Vim", result.Content)
}

func TestReadCommand_NotFound(t *testing.T) {
	store, root := setupStore(t)

	_, err := NewReadCommand(store, []string{"missing"}).Execute(context.Background())

	var nf *application.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, filepath.Join(root, "missing"), nf.Dir)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestReadCommand_EmptyDirectory(t *testing.T) {
	store, root := setupStore(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))

	result, err := NewReadCommand(store, []string{"empty"}).Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, "", result.Content)
}

func TestReadCommand_RequiresSegment(t *testing.T) {
	store, _ := setupStore(t)

	_, err := NewReadCommand(store, nil).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrInvalidPath)
}

func TestListCommand(t *testing.T) {
	store, root := setupStore(t)
	write(t, filepath.Join(root, "b", "b.md"), "B")
	write(t, filepath.Join(root, "b", "c", "c.md"), "C")

	notes, err := NewListCommand(store, headingTitles{}, nil).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, notes, 2)
	assert.Equal(t, domain.NotePath{"b"}, notes[0].Path)
	assert.Equal(t, domain.NotePath{"b", "c"}, notes[1].Path)
	assert.Equal(t, "C", notes[1].Title)

	notes, err = NewListCommand(store, nil, []string{"b", "c"}).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Empty(t, notes[0].Title)

	_, err = NewListCommand(store, nil, []string{"zzz"}).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestListCommand_SkipsLooseFiles(t *testing.T) {
	store, root := setupStore(t)
	write(t, filepath.Join(root, "todo.md"), "# Todo")
	write(t, filepath.Join(root, "vim", "vim.md"), "# Vim")
	write(t, filepath.Join(root, "vim", "surround.md"), "loose")
	write(t, filepath.Join(root, "vim", "surround", "surround.md"), "## Surround")

	notes, err := NewListCommand(store, nil, nil).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, notes, 2)
	assert.Equal(t, domain.NotePath{"vim"}, notes[0].Path)
	assert.Equal(t, domain.NotePath{"vim", "surround"}, notes[1].Path)
	assert.Equal(t, filepath.Join(root, "vim", "surround", "surround.md"), notes[1].File)

	// every listed path addresses its own file
	for _, n := range notes {
		result, err := NewReadCommand(store, n.Path).Execute(context.Background())
		require.NoError(t, err, n.Path.String())
		assert.Contains(t, result.Files, n.File)
	}
}

func TestDeleteCommand_Confirmed(t *testing.T) {
	store, root := setupStore(t)
	_, err := store.EnsureMaterialized(domain.NotePath{"tmux", "layouts"})
	require.NoError(t, err)
	confirmer := &scriptedConfirmer{answer: true}

	result, err := NewDeleteCommand(store, confirmer, []string{"tmux"}).Execute(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Cancelled)
	assert.Equal(t, []string{
		filepath.Join("tmux", "tmux.md"),
		filepath.Join("tmux", "layouts"),
		filepath.Join("tmux", "layouts", "layouts.md"),
	}, confirmer.seen)
	assert.NoDirExists(t, filepath.Join(root, "tmux"))
	assert.Equal(t, "Deleted tmux", result.Message)
}

func TestDeleteCommand_Declined(t *testing.T) {
	store, root := setupStore(t)
	_, err := store.EnsureMaterialized(domain.NotePath{"tmux"})
	require.NoError(t, err)

	result, err := NewDeleteCommand(store, &scriptedConfirmer{answer: false}, []string{"tmux"}).Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Cancelled)
	assert.FileExists(t, filepath.Join(root, "tmux", "tmux.md"))
}

func TestDeleteCommand_ConfirmError(t *testing.T) {
	store, root := setupStore(t)
	_, err := store.EnsureMaterialized(domain.NotePath{"tmux"})
	require.NoError(t, err)

	_, err = NewDeleteCommand(store, &scriptedConfirmer{answer: true, err: errors.New("closed")}, []string{"tmux"}).Execute(context.Background())

	assert.ErrorContains(t, err, "closed")
	assert.DirExists(t, filepath.Join(root, "tmux"))
}

func TestDeleteCommand_NotFoundSkipsConfirmation(t *testing.T) {
	store, _ := setupStore(t)
	confirmer := &scriptedConfirmer{answer: true}

	_, err := NewDeleteCommand(store, confirmer, []string{"missing"}).Execute(context.Background())

	assert.ErrorIs(t, err, application.ErrNotFound)
	assert.Nil(t, confirmer.seen)
}
