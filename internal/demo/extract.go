package demo

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ezerfernandes/codedemo/internal/mdcode"
	"github.com/ezerfernandes/codedemo/internal/region"
)

const (
	metaFile   = "file"
	metaRegion = "region"
)

var reFilename = regexp.MustCompile(`@filename:[ \t]*(\S+)`)

// Filename returns the path declared by an "@filename: <path>" marker in a
// JavaScript fragment, or an empty string.
func Filename(code string) string {
	if subs := reFilename.FindStringSubmatch(code); subs != nil {
		return subs[1]
	}

	return ""
}

// Expand runs the preprocessor registered for the fence language, if any,
// and returns the fragments the fence produces. Without a preprocessor the
// fence yields its content typed by its language.
func Expand(ctx context.Context, block *mdcode.Block, preprocessors map[string]Preprocessor) ([]Result, error) {
	content := string(block.Code)

	if block.Meta.Has(metaRegion) {
		selected, err := region.Select(content, block.Meta.Get(metaRegion))
		if err != nil {
			return nil, &PreprocessError{Lang: block.Lang, Line: block.StartLine, Err: err}
		}

		content = selected
	}

	preprocessor, ok := preprocessors[block.Lang]
	if !ok {
		return []Result{{Type: block.Lang, Output: content}}, nil
	}

	out, err := preprocessor.Preprocess(ctx, content)
	if err != nil {
		return nil, &PreprocessError{Lang: block.Lang, Line: block.StartLine, Err: err}
	}

	if out == nil {
		return nil, nil
	}

	return out.results(), nil
}

// Extract sorts the fragments of blocks by type. Fragments of any other type
// are dropped. JavaScript fragments are named by their "@filename:" marker,
// or by the fence's file= metadata when they have none.
func Extract(ctx context.Context, blocks mdcode.Blocks, preprocessors map[string]Preprocessor) (Fragments, error) {
	var fragments Fragments

	for _, block := range blocks {
		results, err := Expand(ctx, block, preprocessors)
		if err != nil {
			return Fragments{}, err
		}

		for _, result := range results {
			switch result.Type {
			case TypeHTML:
				fragments.HTML = append(fragments.HTML, CodeBlock{Code: result.Output})
			case TypeCSS:
				fragments.CSS = append(fragments.CSS, CodeBlock{Code: result.Output})
			case TypeJS:
				filename := Filename(result.Output)
				if filename == "" {
					filename = block.Meta.Get(metaFile)
				}

				fragments.JS = append(fragments.JS, CodeBlock{Filename: filename, Code: result.Output})
			}
		}
	}

	return fragments, nil
}

// PreprocessError is returned when a fence cannot be turned into fragments.
type PreprocessError struct {
	Lang string
	Line int
	Err  error
}

func (e *PreprocessError) Error() string {
	return fmt.Sprintf("preprocess %q fence at line %d: %v", e.Lang, e.Line, e.Err)
}

func (e *PreprocessError) Unwrap() error {
	return e.Err
}
