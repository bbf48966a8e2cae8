package commands

import (
	"context"

	"recall/internal/application"
	"recall/internal/domain"
	"recall/internal/ports"
)

// ListCommand lists the notes beneath a path, or the whole store when the
// path is empty. Markdown files that are not the stub of their directory have
// no note path and are left out.
type ListCommand struct {
	store    ports.NoteStore
	titles   ports.TitleExtractor
	Segments []string
}

// NewListCommand creates a new ListCommand
func NewListCommand(store ports.NoteStore, titles ports.TitleExtractor, segments []string) *ListCommand {
	return &ListCommand{
		store:    store,
		titles:   titles,
		Segments: segments,
	}
}

// Validate checks if the list operation is valid
func (c *ListCommand) Validate() (domain.NotePath, error) {
	return application.ValidateNotePath(c.Segments, application.TaskList.MinSegments())
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Note, error) {
	path, err := c.Validate()
	if err != nil {
		return nil, err
	}

	dir := c.store.Resolve(path)
	files, ok := c.store.CollectMarkdown(dir)
	if !ok {
		return nil, &application.NotFoundError{Dir: dir}
	}

	notes := make([]domain.Note, 0, len(files))
	for _, f := range files {
		notePath, ok := c.store.NotePathOf(f)
		if !ok {
			continue
		}
		note := domain.Note{
			Path: notePath,
			File: f,
		}
		if c.titles != nil {
			if data, err := c.store.ReadFile(f); err == nil {
				note.Title = c.titles.Title(data)
			}
		}
		notes = append(notes, note)
	}
	return notes, nil
}
