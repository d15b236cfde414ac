package demo

import (
	"context"
	"strings"
)

// Fragment types the document renderer receives.
const (
	TypeHTML = "html"
	TypeCSS  = "css"
	TypeJS   = "js"
)

// Result is a fragment of code of a single type produced from a fence.
type Result struct {
	Type   string
	Output string
}

// Results is an ordered list of fragments produced from one fence.
type Results []Result

// Output is what a preprocessor returns: either a single [Result] or an
// ordered [Results] list.
type Output interface {
	results() []Result
}

func (r Result) results() []Result { return []Result{r} }

func (r Results) results() []Result { return r }

// Preprocessor turns the raw content of a fence into typed fragments.
type Preprocessor interface {
	Preprocess(ctx context.Context, source string) (Output, error)
}

// PreprocessorFunc adapts a function to [Preprocessor].
type PreprocessorFunc func(ctx context.Context, source string) (Output, error)

func (f PreprocessorFunc) Preprocess(ctx context.Context, source string) (Output, error) {
	return f(ctx, source)
}

// CodeBlock is one fragment after preprocessing. Only JavaScript fragments
// carry a filename.
type CodeBlock struct {
	Filename string
	Code     string
}

// Fragments holds the fragments of a demo by type, in source order.
type Fragments struct {
	HTML []CodeBlock
	CSS  []CodeBlock
	JS   []CodeBlock
}

// Aggregate is the input of the document renderer.
type Aggregate struct {
	HTML string
	CSS  string
	JS   string
}

// Aggregate concatenates the fragments of each type with no separator.
func (f Fragments) Aggregate() Aggregate {
	return Aggregate{
		HTML: join(f.HTML),
		CSS:  join(f.CSS),
		JS:   join(f.JS),
	}
}

func join(blocks []CodeBlock) string {
	var sb strings.Builder

	for _, block := range blocks {
		sb.WriteString(block.Code)
	}

	return sb.String()
}
