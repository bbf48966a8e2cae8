package commands

import (
	"context"
	"slices"
	"strings"

	"recall/internal/application"
	"recall/internal/domain"
	"recall/internal/ports"
)

// ReadResult contains the concatenated notes of a subtree
type ReadResult struct {
	Files   []string // Files in presentation order
	Content string   // Readable files only
	Output  string   // Content with an "ERROR: <err>" line in place of each unreadable file
	Skipped []error  // Files that could not be read
}

// ReadCommand prints every note beneath a path
type ReadCommand struct {
	store    ports.NoteStore
	Segments []string
	// DeepestFirst presents the most specific notes first instead of the
	// subtree's own note first
	DeepestFirst bool
}

// NewReadCommand creates a new ReadCommand
func NewReadCommand(store ports.NoteStore, segments []string) *ReadCommand {
	return &ReadCommand{
		store:    store,
		Segments: segments,
	}
}

// Validate checks if the read operation is valid
func (c *ReadCommand) Validate() (domain.NotePath, error) {
	return application.ValidateNotePath(c.Segments, application.TaskRead.MinSegments())
}

// Execute runs the read command. A subtree that does not exist yields a
// NotFoundError. Files that fail to read are collected in Skipped and
// reported in Output at their position.
func (c *ReadCommand) Execute(ctx context.Context) (*ReadResult, error) {
	path, err := c.Validate()
	if err != nil {
		return nil, err
	}

	dir := c.store.Resolve(path)
	files, ok := c.store.CollectMarkdown(dir)
	if !ok {
		return nil, &application.NotFoundError{Dir: dir}
	}
	if c.DeepestFirst {
		files = slices.Clone(files)
		slices.Reverse(files)
	}

	result := &ReadResult{Files: files}
	contents := make([]string, 0, len(files))
	output := make([]string, 0, len(files))
	for _, f := range files {
		data, err := c.store.ReadFile(f)
		if err != nil {
			result.Skipped = append(result.Skipped, err)
			output = append(output, "ERROR: "+err.Error())
			continue
		}
		text := strings.TrimRight(string(data), "\n")
		contents = append(contents, text)
		output = append(output, text)
	}
	result.Content = strings.Join(contents, "\n\n")
	result.Output = strings.Join(output, "\n\n")

	return result, nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
