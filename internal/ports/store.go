package ports

import "recall/internal/domain"

// NoteStore defines the interface for directory-backed note storage
type NoteStore interface {
	// Root returns the store root directory
	Root() string

	// Resolve joins the store root and the path segments
	Resolve(path domain.NotePath) string

	// Rel renders a path relative to the store root
	Rel(path string) string

	// NotePathOf derives the note path of a markdown file under the root.
	// ok is false for files that are not the stub of their directory.
	NotePathOf(file string) (path domain.NotePath, ok bool)

	// EnsureMaterialized creates every missing prefix of path and returns the deepest stub
	EnsureMaterialized(path domain.NotePath) (*domain.Materialized, error)

	// CollectMarkdown returns markdown files under dir; false when dir cannot be opened
	CollectMarkdown(dir string) ([]string, bool)

	// CollectAll returns every entry under dir; false when dir cannot be opened
	CollectAll(dir string) ([]string, bool)

	// DeleteSubtree removes dir and everything beneath it
	DeleteSubtree(dir string) error

	// ReadFile returns the contents of a note file
	ReadFile(path string) ([]byte, error)
}
