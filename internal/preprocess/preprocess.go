// Package preprocess provides ready-made fence preprocessors.
package preprocess

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/ezerfernandes/codedemo/internal/demo"
)

// ErrUnknownBuiltin is returned by [Builtin] for an unknown name.
var ErrUnknownBuiltin = errors.New("unknown builtin preprocessor")

// Builtin returns the preprocessor registered under name: "ts", "tsx" and
// "jsx" compile to JavaScript, "sfc" splits a single-file component.
func Builtin(name string) (demo.Preprocessor, error) {
	switch name {
	case "ts":
		return Transform(api.LoaderTS), nil
	case "tsx":
		return Transform(api.LoaderTSX), nil
	case "jsx":
		return Transform(api.LoaderJSX), nil
	case "sfc":
		return SFC(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, name)
	}
}

// Transform compiles fences with the given esbuild loader into a JavaScript
// fragment. Imports and exports are kept so the result can still be bundled.
func Transform(loader api.Loader) demo.Preprocessor {
	return demo.PreprocessorFunc(func(ctx context.Context, source string) (demo.Output, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := api.Transform(source, api.TransformOptions{
			Loader:   loader,
			Target:   api.ESNext,
			Format:   api.FormatDefault,
			LogLevel: api.LogLevelSilent,
		})

		if len(result.Errors) > 0 {
			texts := make([]string, 0, len(result.Errors))
			for _, msg := range result.Errors {
				texts = append(texts, msg.Text)
			}

			return nil, fmt.Errorf("transform: %s", strings.Join(texts, "; "))
		}

		return demo.Result{Type: demo.TypeJS, Output: string(result.Code)}, nil
	})
}
