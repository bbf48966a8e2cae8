package ports

// TitleExtractor derives a display title from note content
type TitleExtractor interface {
	Title(content []byte) string
}
