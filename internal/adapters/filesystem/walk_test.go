package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(r)
	}
	return out
}

func TestCollectMarkdown_FilesBeforeSubdirs(t *testing.T) {
	s, root := setupTestStore(t)
	writeFile(t, filepath.Join(root, "z", "z.md"), "z")
	writeFile(t, filepath.Join(root, "b", "b.md"), "b")
	writeFile(t, filepath.Join(root, "a.md"), "a")

	got, ok := s.CollectMarkdown(root)

	require.True(t, ok)
	assert.Equal(t, []string{"a.md", "b/b.md", "z/z.md"}, rel(t, root, got))
}

func TestCollectMarkdown_NestedNotes(t *testing.T) {
	s, root := setupTestStore(t)
	writeFile(t, filepath.Join(root, "grep", "grep.md"), "")
	writeFile(t, filepath.Join(root, "tmux", "tmux.md"), "")
	writeFile(t, filepath.Join(root, "tmux", "layouts", "layouts.md"), "")
	writeFile(t, filepath.Join(root, "tmux", "layouts", "tabs", "tabs.md"), "")
	writeFile(t, filepath.Join(root, "vim", "vim.md"), "")
	writeFile(t, filepath.Join(root, "vim", "surround", "surround.md"), "")
	writeFile(t, filepath.Join(root, "vim", "readme.txt"), "")
	writeFile(t, filepath.Join(root, ".git", "HEAD.md"), "")
	writeFile(t, filepath.Join(root, "vim", ".draft.md"), "")

	got, ok := s.CollectMarkdown(root)

	require.True(t, ok)
	assert.Equal(t, []string{
		"grep/grep.md",
		"tmux/tmux.md",
		"tmux/layouts/layouts.md",
		"tmux/layouts/tabs/tabs.md",
		"vim/vim.md",
		"vim/surround/surround.md",
	}, rel(t, root, got))
}

func TestCollectMarkdown_Subtree(t *testing.T) {
	s, root := setupTestStore(t)
	writeFile(t, filepath.Join(root, "vim", "vim.md"), "")
	writeFile(t, filepath.Join(root, "vim", "surround", "surround.md"), "")
	writeFile(t, filepath.Join(root, "tmux", "tmux.md"), "")

	got, ok := s.CollectMarkdown(filepath.Join(root, "vim"))

	require.True(t, ok)
	assert.Equal(t, []string{"vim/vim.md", "vim/surround/surround.md"}, rel(t, root, got))
}

func TestCollectMarkdown_MissingVersusEmpty(t *testing.T) {
	s, root := setupTestStore(t)

	got, ok := s.CollectMarkdown("/does/not/exist")
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok = s.CollectMarkdown(root)
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectMarkdown_RootIsFile(t *testing.T) {
	s, root := setupTestStore(t)
	file := filepath.Join(root, "a.md")
	writeFile(t, file, "a")

	_, ok := s.CollectMarkdown(file)
	assert.False(t, ok)
}

func TestCollectAll(t *testing.T) {
	s, root := setupTestStore(t)
	writeFile(t, filepath.Join(root, "tmux", "tmux.md"), "")
	writeFile(t, filepath.Join(root, "tmux", "notes.txt"), "")
	writeFile(t, filepath.Join(root, "tmux", "layouts", "layouts.md"), "")
	writeFile(t, filepath.Join(root, "tmux", "keys", "keys.md"), "")
	writeFile(t, filepath.Join(root, "tmux", ".swp"), "")

	got, ok := s.CollectAll(filepath.Join(root, "tmux"))

	require.True(t, ok)
	assert.Equal(t, []string{
		"tmux/notes.txt",
		"tmux/tmux.md",
		"tmux/keys",
		"tmux/keys/keys.md",
		"tmux/layouts",
		"tmux/layouts/layouts.md",
	}, rel(t, root, got))

	_, ok = s.CollectAll(filepath.Join(root, "missing"))
	assert.False(t, ok)
}
