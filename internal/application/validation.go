package application

import (
	"fmt"
	"strings"

	"recall/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts field names to space-separated words
// for more readable error messages (e.g., "storeRoot" -> "store root")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":      "note path",
		"storeRoot": "store root",
		"confirm":   "confirmation",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateNotePath checks the segments form a NotePath with at least minSegments segments.
// minSegments of zero allows an empty path, which addresses the store root.
func ValidateNotePath(segments []string, minSegments int) (domain.NotePath, error) {
	if len(segments) < minSegments {
		return nil, &ValidationError{
			Field:   "path",
			Message: fmt.Sprintf("not enough arguments: expected at least %d segment(s), got %d", minSegments, len(segments)),
		}
	}
	if len(segments) == 0 {
		return domain.NotePath{}, nil
	}
	p, err := domain.NewNotePath(segments)
	if err != nil {
		return nil, &ValidationError{
			Field:   "path",
			Message: err.Error(),
		}
	}
	return p, nil
}
