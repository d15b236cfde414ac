// Package minify shrinks rendered demo documents.
package minify

import (
	"fmt"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

const htmlMediaType = "text/html"

var reJSMediaType = regexp.MustCompile(`^(application|text)/(x-)?(java|ecma|module)script$|^module$`)

// Options selects the embedded languages to minify besides the HTML itself.
// Inline code of a disabled language is copied as written.
type Options struct {
	CSS bool
	JS  bool
}

// Document minifies an HTML document with its inline styles and scripts.
func Document(document string, opts Options) (string, error) {
	m := minify.New()

	m.Add(htmlMediaType, &html.Minifier{
		KeepDocumentTags: false,
		KeepEndTags:      false,
		KeepQuotes:       false,
	})

	if opts.CSS {
		m.AddFunc("text/css", css.Minify)
	}

	if opts.JS {
		m.AddRegexp(reJSMediaType, &js.Minifier{})
	}

	out, err := m.String(htmlMediaType, document)
	if err != nil {
		return "", fmt.Errorf("minify document: %w", err)
	}

	return out, nil
}
