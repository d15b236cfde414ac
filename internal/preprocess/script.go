package preprocess

import (
	"context"
	"errors"
	"fmt"

	"github.com/dop251/goja"

	"github.com/ezerfernandes/codedemo/internal/demo"
)

var errBadScriptResult = errors.New("script must return {type, output} or an array of them")

// Script runs fence content through a JavaScript function. The script is an
// expression evaluating to the function, for example
//
//	src => ({ type: "html", output: "<pre>" + src + "</pre>" })
//
// The function returns one {type, output} object or an array of them. Each
// call gets a fresh runtime, interrupted when ctx is done.
func Script(script string) (demo.Preprocessor, error) {
	program, err := goja.Compile("preprocess", "("+script+")", true)
	if err != nil {
		return nil, fmt.Errorf("compile script: %w", err)
	}

	return demo.PreprocessorFunc(func(ctx context.Context, source string) (demo.Output, error) {
		vm := goja.New()
		vm.SetMaxCallStackSize(1024)

		done := make(chan struct{})
		defer close(done)

		go func() {
			select {
			case <-ctx.Done():
				vm.Interrupt(ctx.Err())
			case <-done:
			}
		}()

		value, err := vm.RunProgram(program)
		if err != nil {
			return nil, fmt.Errorf("run script: %w", err)
		}

		fn, ok := goja.AssertFunction(value)
		if !ok {
			return nil, errors.New("script does not evaluate to a function")
		}

		ret, err := fn(goja.Undefined(), vm.ToValue(source))
		if err != nil {
			return nil, fmt.Errorf("run script: %w", err)
		}

		return exportResults(ret.Export())
	}), nil
}

func exportResults(value any) (demo.Output, error) {
	switch v := value.(type) {
	case map[string]any:
		return exportResult(v)
	case []any:
		results := make(demo.Results, 0, len(v))

		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, errBadScriptResult
			}

			result, err := exportResult(obj)
			if err != nil {
				return nil, err
			}

			results = append(results, result)
		}

		return results, nil
	default:
		return nil, errBadScriptResult
	}
}

func exportResult(obj map[string]any) (demo.Result, error) {
	typ, ok := obj["type"].(string)
	if !ok {
		return demo.Result{}, errBadScriptResult
	}

	output, ok := obj["output"].(string)
	if !ok {
		return demo.Result{}, errBadScriptResult
	}

	return demo.Result{Type: typ, Output: output}, nil
}
