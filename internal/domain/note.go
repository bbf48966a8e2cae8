package domain

// Note is a markdown file discovered under the store root
type Note struct {
	Path  NotePath // Segments relative to the store root
	File  string   // Full path to the markdown file
	Title string   // First heading, or frontmatter title when present
}

// Materialized describes the outcome of ensuring a NotePath exists on disk
type Materialized struct {
	File         string   // Deepest stub file
	CreatedDirs  []string // Directories created by this call, shallowest first
	CreatedFiles []string // Stub files created by this call, shallowest first
}

// Created reports whether anything new was written
func (m *Materialized) Created() bool {
	return len(m.CreatedDirs) > 0 || len(m.CreatedFiles) > 0
}
