package commands

import (
	"context"
	"fmt"

	"recall/internal/application"
	"recall/internal/domain"
	"recall/internal/ports"
)

// EditCommand materializes a note and opens its deepest file in an editor
type EditCommand struct {
	store    ports.NoteStore
	editor   ports.EditorOpener
	Segments []string
}

// NewEditCommand creates a new EditCommand
func NewEditCommand(store ports.NoteStore, editor ports.EditorOpener, segments []string) *EditCommand {
	return &EditCommand{
		store:    store,
		editor:   editor,
		Segments: segments,
	}
}

// Validate checks if the edit operation is valid
func (c *EditCommand) Validate() (domain.NotePath, error) {
	return application.ValidateNotePath(c.Segments, application.TaskEdit.MinSegments())
}

// Execute runs the edit command. When the editor fails the result is still
// returned so callers can report what was created; nothing is rolled back.
func (c *EditCommand) Execute(ctx context.Context) (*CreateResult, error) {
	path, err := c.Validate()
	if err != nil {
		return nil, err
	}

	result, err := materialize(c.store, path)
	if err != nil {
		return nil, err
	}

	if err := c.editor.OpenFile(result.Note.File); err != nil {
		return result, fmt.Errorf("failed to edit %s: %w", result.Note.File, err)
	}
	return result, nil
}
