package filesystem

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"recall/internal/application"
	"recall/internal/domain"
)

var (
	markdownPattern = glob.MustCompile("*" + domain.MarkdownExt)
	hiddenPattern   = glob.MustCompile(".*")
)

// Store implements ports.NoteStore using the filesystem
type Store struct {
	root   string
	logger *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a new filesystem store rooted at root.
// The root is never created by the store.
func NewStore(root string, opts ...Option) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	s := &Store{
		root:   filepath.Clean(root),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the store root directory
func (s *Store) Root() string {
	return s.root
}

// Resolve joins the store root and the path segments
func (s *Store) Resolve(path domain.NotePath) string {
	return filepath.Join(append([]string{s.root}, path...)...)
}

// Rel renders a path relative to the store root, falling back to the path itself
func (s *Store) Rel(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// NotePathOf derives the note path of a markdown file under the root. Only a
// stub named after its directory has one: Resolve of the result is that
// directory. Loose files such as root/todo.md or vim/surround.md return false.
func (s *Store) NotePathOf(file string) (domain.NotePath, bool) {
	rel := filepath.ToSlash(s.Rel(file))
	if filepath.IsAbs(rel) {
		return nil, false
	}
	dir, name := path.Split(rel)
	stem := strings.TrimSuffix(name, domain.MarkdownExt)

	dir = strings.Trim(dir, "/")
	if dir == "" {
		return nil, false
	}
	p := domain.NotePath(strings.Split(dir, "/"))
	if p.Last() != stem {
		return nil, false
	}
	return p, true
}

// EnsureMaterialized makes sure every prefix of path exists as a directory holding a
// stub named after its last segment. Levels are handled shallowest first so each
// directory is created with os.Mkdir under an existing parent. A level whose stub
// already exists is left untouched. Nothing is rolled back on failure.
func (s *Store) EnsureMaterialized(path domain.NotePath) (*domain.Materialized, error) {
	if err := path.Validate(); err != nil {
		return nil, &application.ValidationError{Field: "path", Message: err.Error()}
	}

	res := &domain.Materialized{}
	dir := s.root

	for i, segment := range path {
		dir = filepath.Join(dir, segment)
		stub := filepath.Join(dir, domain.StubName(segment))
		res.File = stub

		exists, err := fileExists(stub)
		if err != nil {
			return nil, &application.IOError{Op: "stat", Path: stub, Err: err}
		}
		if exists {
			continue
		}

		if err := os.Mkdir(dir, 0755); err != nil {
			if !errors.Is(err, fs.ErrExist) {
				return nil, &application.IOError{Op: "create directory", Path: dir, Err: unwrapPathError(err)}
			}
		} else {
			res.CreatedDirs = append(res.CreatedDirs, dir)
			s.logger.Debug("created directory", slog.String("path", dir))
		}

		if err := writeStub(stub, domain.Heading(i, segment)); err != nil {
			return nil, &application.IOError{Op: "create file", Path: stub, Err: unwrapPathError(err)}
		}
		res.CreatedFiles = append(res.CreatedFiles, stub)
		s.logger.Debug("created file", slog.String("path", stub))
	}

	return res, nil
}

// ReadFile returns the contents of a note file
func (s *Store) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &application.IOError{Op: "read", Path: path, Err: unwrapPathError(err)}
	}
	return data, nil
}

// DeleteSubtree removes dir and everything beneath it. It does not ask for
// confirmation; callers preview with CollectAll and confirm first.
func (s *Store) DeleteSubtree(dir string) error {
	if filepath.Clean(dir) == s.root {
		return &application.IOError{Op: "delete", Path: dir, Err: errors.New("refusing to delete the store root")}
	}
	if err := os.RemoveAll(dir); err != nil {
		return &application.IOError{Op: "delete", Path: dir, Err: unwrapPathError(err)}
	}
	s.logger.Debug("deleted subtree", slog.String("path", dir))
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, unwrapPathError(err)
	}
}

func writeStub(path, heading string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(heading + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// unwrapPathError strips the *fs.PathError so IOError does not repeat the path
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
