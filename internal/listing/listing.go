// Package listing renders the Markdown source of a demo as highlighted HTML,
// to be shown next to the preview.
package listing

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// DefaultStyle is the chroma style used when none is given.
const DefaultStyle = "github"

// Renderer converts demo sources to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer highlighting code with the named chroma style. With
// classes set, highlighting uses CSS classes instead of inline styles.
func New(style string, classes bool) *Renderer {
	if style == "" {
		style = DefaultStyle
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(classes),
				),
			),
		),
	)

	return &Renderer{md: md}
}

// Render converts source to HTML. Raw HTML in the source is not passed
// through.
func (r *Renderer) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
