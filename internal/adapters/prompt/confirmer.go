package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"recall/internal/application"
)

// Confirmer implements ports.Confirmer on a line based terminal
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer creates a confirmer reading answers from in and writing to out
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints each entry prefixed with "- ", then the prompt, and reads a
// single line. Only the exact word YES (surrounding whitespace ignored) confirms.
func (c *Confirmer) Confirm(entries []string) (bool, error) {
	for _, e := range entries {
		if _, err := fmt.Fprintf(c.out, "- %s\n", e); err != nil {
			return false, err
		}
	}
	if _, err := fmt.Fprintln(c.out, application.ConfirmationPrompt); err != nil {
		return false, err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return IsConfirmed(line), nil
}

// IsConfirmed reports whether answer authorizes a delete
func IsConfirmed(answer string) bool {
	return strings.TrimSpace(answer) == application.ConfirmationWord
}
