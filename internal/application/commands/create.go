package commands

import (
	"context"
	"fmt"

	"recall/internal/application"
	"recall/internal/domain"
	"recall/internal/ports"
)

// CreateResult contains the result of materializing a note
type CreateResult struct {
	Note  *domain.Materialized
	Lines []string // One line per created directory or file
}

// Message summarizes the result for display
func (r *CreateResult) Message() string {
	if len(r.Lines) == 0 {
		return fmt.Sprintf("Note already exists: %s", r.Note.File)
	}
	return joinLines(r.Lines)
}

// CreateCommand ensures a note and all of its ancestors exist
type CreateCommand struct {
	store    ports.NoteStore
	Segments []string
}

// NewCreateCommand creates a new CreateCommand
func NewCreateCommand(store ports.NoteStore, segments []string) *CreateCommand {
	return &CreateCommand{
		store:    store,
		Segments: segments,
	}
}

// Validate checks if the create operation is valid
func (c *CreateCommand) Validate() (domain.NotePath, error) {
	return application.ValidateNotePath(c.Segments, application.TaskNew.MinSegments())
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context) (*CreateResult, error) {
	path, err := c.Validate()
	if err != nil {
		return nil, err
	}
	return materialize(c.store, path)
}

func materialize(store ports.NoteStore, path domain.NotePath) (*CreateResult, error) {
	note, err := store.EnsureMaterialized(path)
	if err != nil {
		return nil, fmt.Errorf("error creating note %q: %w", path, err)
	}

	result := &CreateResult{Note: note}
	for _, d := range note.CreatedDirs {
		result.Lines = append(result.Lines, "Created directory: "+d)
	}
	for _, f := range note.CreatedFiles {
		result.Lines = append(result.Lines, "Created file: "+f)
	}
	return result, nil
}
