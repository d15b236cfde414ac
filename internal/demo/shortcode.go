// Package demo turns Markdown code fences into a sandboxed iframe preview.
//
// A [Shortcode] collects the html, css and js fences of a source string,
// runs them through optional preprocessors, optionally bundles the
// JavaScript, renders a document from the result and returns an <iframe>
// whose srcdoc holds that document, minified and escaped.
package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ezerfernandes/codedemo/internal/attr"
	"github.com/ezerfernandes/codedemo/internal/bundle"
	"github.com/ezerfernandes/codedemo/internal/mdcode"
	"github.com/ezerfernandes/codedemo/internal/minify"
)

// DefaultName is used in error messages when Options.Name is empty.
const DefaultName = "codedemo"

// ErrInvalidArgument is returned for a missing title or incomplete options.
var ErrInvalidArgument = errors.New("invalid argument")

// RenderFunc builds the iframe document from the aggregated fragments.
type RenderFunc func(Aggregate) (string, error)

// Options configures a [Shortcode].
type Options struct {
	// Name identifies the shortcode in error messages.
	Name string
	// RenderDocument is required.
	RenderDocument RenderFunc
	// IframeAttributes apply to every iframe.
	IframeAttributes attr.Attributes
	// Preprocess maps a fence language to its preprocessor.
	Preprocess map[string]Preprocessor
	// Bundle links the JavaScript fragments into one module graph instead of
	// concatenating them.
	Bundle bool
}

// Shortcode renders demos. It is safe for concurrent use.
type Shortcode struct {
	name          string
	render        RenderFunc
	attributes    attr.Attributes
	preprocessors map[string]Preprocessor
	bundle        bool
}

// New validates opts and returns a Shortcode.
func New(opts Options) (*Shortcode, error) {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	if opts.RenderDocument == nil {
		return nil, fmt.Errorf("%s: %w: a document render function is required", name, ErrInvalidArgument)
	}

	preprocessors := make(map[string]Preprocessor, len(opts.Preprocess))
	for lang, preprocessor := range opts.Preprocess {
		preprocessors[lang] = preprocessor
	}

	return &Shortcode{
		name:          name,
		render:        opts.RenderDocument,
		attributes:    opts.IframeAttributes.Clone(),
		preprocessors: preprocessors,
		bundle:        opts.Bundle,
	}, nil
}

// Name returns the shortcode name.
func (s *Shortcode) Name() string {
	return s.name
}

// Preprocessors returns a copy of the preprocessors by fence language.
func (s *Shortcode) Preprocessors() map[string]Preprocessor {
	res := make(map[string]Preprocessor, len(s.preprocessors))
	for lang, preprocessor := range s.preprocessors {
		res[lang] = preprocessor
	}

	return res
}

// Render returns the iframe for the fences in source. props are attributes
// for this iframe only; they override the shared ones, except class which is
// combined with them.
func (s *Shortcode) Render(ctx context.Context, source, title string, props attr.Attributes) (string, error) {
	if err := s.checkTitle(title); err != nil {
		return "", err
	}

	blocks, err := mdcode.Unfence([]byte(source))
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.name, err)
	}

	return s.RenderBlocks(ctx, blocks, title, props)
}

// RenderBlocks is [Shortcode.Render] for fences that are already parsed.
func (s *Shortcode) RenderBlocks(ctx context.Context, blocks mdcode.Blocks, title string, props attr.Attributes) (string, error) {
	if err := s.checkTitle(title); err != nil {
		return "", err
	}

	props = props.Delete(attr.Keywords)

	fragments, err := Extract(ctx, blocks, s.preprocessors)
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.name, err)
	}

	aggregate := fragments.Aggregate()

	if s.bundle {
		aggregate.JS, err = bundle.Bundle(ctx, modules(fragments.JS))
		if err != nil {
			return "", fmt.Errorf("%s: %w", s.name, err)
		}
	}

	srcdoc, err := s.document(aggregate)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, `<iframe title="%s" srcdoc="%s"`, title, Escape(srcdoc))

	if attributes := attr.Merge(s.attributes, props).String(); attributes != "" {
		sb.WriteByte(' ')
		sb.WriteString(attributes)
	}

	sb.WriteString("></iframe>")

	return sb.String(), nil
}

func (s *Shortcode) checkTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%s: %w: you must provide a non-empty title for the iframe", s.name, ErrInvalidArgument)
	}

	return nil
}

// document renders and minifies the iframe document.
func (s *Shortcode) document(aggregate Aggregate) (string, error) {
	doc, err := s.render(aggregate)
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.name, &RenderError{Err: err})
	}

	if doc == "" {
		return "", nil
	}

	doc, err = minify.Document(doc, minify.Options{
		CSS: aggregate.CSS != "",
		JS:  aggregate.JS != "",
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.name, err)
	}

	return doc, nil
}

func modules(blocks []CodeBlock) []bundle.Module {
	res := make([]bundle.Module, len(blocks))
	for i, block := range blocks {
		res[i] = bundle.Module{Filename: block.Filename, Code: block.Code}
	}

	return res
}

// RenderError wraps an error returned by the document render function.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "render document: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape makes s safe to embed in a double or single quoted HTML attribute.
func Escape(s string) string {
	return escaper.Replace(s)
}
