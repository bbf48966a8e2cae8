package filesystem

import (
	"log/slog"
	"os"
	"path/filepath"
)

// CollectMarkdown returns the markdown files beneath dir, depth first. Within a
// directory its own markdown files come before any subdirectory, and both are in
// lexicographic order, so vim/vim.md always precedes vim/surround/surround.md.
// Hidden entries are skipped. The second result is false when dir cannot be
// opened; an empty directory yields an empty, non-nil slice.
func (s *Store) CollectMarkdown(dir string) ([]string, bool) {
	return s.collect(dir, false)
}

// CollectAll returns every entry beneath dir with the same ordering and hidden
// entry rules as CollectMarkdown. Each subdirectory is listed right before its
// own contents.
func (s *Store) CollectAll(dir string) ([]string, bool) {
	return s.collect(dir, true)
}

func (s *Store) collect(dir string, all bool) ([]string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, false
	}
	out := []string{}
	s.walk(dir, entries, all, &out)
	return out, true
}

func (s *Store) walk(dir string, entries []os.DirEntry, all bool, out *[]string) {
	// os.ReadDir sorts by name
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if hiddenPattern.Match(name) {
			continue
		}
		if entry.IsDir() {
			subdirs = append(subdirs, name)
			continue
		}
		if all || markdownPattern.Match(name) {
			*out = append(*out, filepath.Join(dir, name))
		}
	}

	for _, name := range subdirs {
		sub := filepath.Join(dir, name)
		if all {
			*out = append(*out, sub)
		}
		children, err := os.ReadDir(sub)
		if err != nil {
			s.logger.Warn("skipping unreadable directory", slog.String("path", sub), slog.String("error", err.Error()))
			continue
		}
		s.walk(sub, children, all, out)
	}
}
