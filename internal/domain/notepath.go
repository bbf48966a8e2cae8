package domain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MarkdownExt is the extension of every note stub
const MarkdownExt = ".md"

// NotePath is an ordered sequence of path segments identifying a note
// (e.g. ["rust", "release", "install"]). A NotePath is never persisted as a
// structure, only its directory materialization is.
type NotePath []string

var segmentRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	switch {
	case s == "":
		return errors.New("segment must not be empty")
	case s == "." || s == "..":
		return errors.New("segment must not be a relative directory reference")
	case strings.ContainsAny(s, `/\`):
		return errors.New("segment must not contain a path separator")
	case strings.ContainsRune(s, 0):
		return errors.New("segment must not contain a NUL byte")
	}
	return nil
})

// NewNotePath copies segments into a NotePath and validates it
func NewNotePath(segments []string) (NotePath, error) {
	p := make(NotePath, len(segments))
	copy(p, segments)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseNotePath splits a whitespace separated string ("swift keypath") into a NotePath
func ParseNotePath(s string) (NotePath, error) {
	return NewNotePath(strings.Fields(s))
}

// Validate checks that the path is non-empty and every segment is a single path component
func (p NotePath) Validate() error {
	return validation.Validate([]string(p),
		validation.Required.Error("note path must have at least one segment"),
		validation.Each(segmentRule),
	)
}

// Depth returns the number of segments
func (p NotePath) Depth() int {
	return len(p)
}

// Last returns the deepest segment, or "" for an empty path
func (p NotePath) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Prefix returns the first n segments
func (p NotePath) Prefix(n int) NotePath {
	return p[:n]
}

// String renders the path the way it is typed on the command line
func (p NotePath) String() string {
	return strings.Join(p, " ")
}

// StubName returns the markdown file name for a segment ("keypath" -> "keypath.md")
func StubName(segment string) string {
	return segment + MarkdownExt
}

// Heading returns the stub heading for a segment at the given zero-based level:
// level+1 hashes, a space, then the segment with its first character capitalized.
func Heading(level int, segment string) string {
	return strings.Repeat("#", level+1) + " " + Capitalize(segment)
}

// Capitalize upper-cases the first rune of s
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
