package commands

import (
	"context"
	"fmt"

	"recall/internal/application"
	"recall/internal/domain"
	"recall/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Dir       string
	Entries   []string // What was (or would have been) removed, relative to the store root
	Cancelled bool
	Message   string
}

// DeleteCommand removes a note and everything beneath it after confirmation
type DeleteCommand struct {
	store     ports.NoteStore
	confirmer ports.Confirmer
	Segments  []string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(store ports.NoteStore, confirmer ports.Confirmer, segments []string) *DeleteCommand {
	return &DeleteCommand{
		store:     store,
		confirmer: confirmer,
		Segments:  segments,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() (domain.NotePath, error) {
	return application.ValidateNotePath(c.Segments, application.TaskDelete.MinSegments())
}

// Preview returns the directory that would be removed and every entry beneath it
func (c *DeleteCommand) Preview(ctx context.Context) (string, []string, error) {
	path, err := c.Validate()
	if err != nil {
		return "", nil, err
	}

	dir := c.store.Resolve(path)
	entries, ok := c.store.CollectAll(dir)
	if !ok {
		return "", nil, &application.NotFoundError{Dir: dir}
	}

	rel := make([]string, len(entries))
	for i, e := range entries {
		rel[i] = c.store.Rel(e)
	}
	return dir, rel, nil
}

// Execute previews the subtree, asks for confirmation and deletes it only when
// the confirmer agrees. A declined confirmation is not an error.
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	dir, entries, err := c.Preview(ctx)
	if err != nil {
		return nil, err
	}

	result := &DeleteResult{Dir: dir, Entries: entries}

	confirmed, err := c.confirmer.Confirm(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm delete: %w", err)
	}
	if !confirmed {
		result.Cancelled = true
		result.Message = "Cancelled, nothing was deleted"
		return result, nil
	}

	if err := c.store.DeleteSubtree(dir); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", dir, err)
	}

	result.Message = fmt.Sprintf("Deleted %s", c.store.Rel(dir))
	return result, nil
}
