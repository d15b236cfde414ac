package preprocess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/ezerfernandes/codedemo/internal/demo"
)

var errMissingType = errors.New("an output type is required")

// Command pipes fence content through a shell command and types its standard
// output as outType. The command is interpreted in-process, so it behaves the
// same on every platform; dir is its working directory, the current one when
// empty.
func Command(command, outType, dir string) (demo.Preprocessor, error) {
	if outType == "" {
		return nil, fmt.Errorf("command %q: %w", command, errMissingType)
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", command, err)
	}

	return demo.PreprocessorFunc(func(ctx context.Context, source string) (demo.Output, error) {
		var stdout, stderr bytes.Buffer

		opts := []interp.RunnerOption{interp.StdIO(strings.NewReader(source), &stdout, &stderr)}
		if dir != "" {
			opts = append(opts, interp.Dir(dir))
		}

		runner, err := interp.New(opts...)
		if err != nil {
			return nil, err
		}

		if err := runner.Run(ctx, file); err != nil {
			if status, ok := interp.IsExitStatus(err); ok {
				return nil, fmt.Errorf("command %q exited with %d: %s", command, status, strings.TrimSpace(stderr.String()))
			}

			return nil, fmt.Errorf("command %q: %w", command, err)
		}

		return demo.Result{Type: outType, Output: stdout.String()}, nil
	}), nil
}
