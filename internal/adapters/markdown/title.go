// Package markdown extracts display titles from note files.
package markdown

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type meta struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// TitleExtractor implements ports.TitleExtractor with goldmark.
// A frontmatter title wins over the first heading of the body.
type TitleExtractor struct {
	md goldmark.Markdown
}

// NewTitleExtractor creates a TitleExtractor
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{md: goldmark.New()}
}

// Title returns the note title, or "" when the note has neither a
// frontmatter title nor a heading
func (e *TitleExtractor) Title(content []byte) string {
	var m meta
	body, err := frontmatter.Parse(bytes.NewReader(content), &m)
	if err != nil {
		body = content
	}
	if t := strings.TrimSpace(m.Title); t != "" {
		return t
	}

	doc := e.md.Parser().Parse(text.NewReader(body))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(inlineText(h, body))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(inlineText(c, src))
		}
	}
	return b.String()
}
