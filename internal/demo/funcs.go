package demo

import (
	"context"
	"fmt"
	"html/template"

	"github.com/ezerfernandes/codedemo/internal/attr"
)

// Func returns the shortcode as a template function, for use in a FuncMap:
//
//	{{ codedemo .Source "Button demo" "class" "wide" "loading" "lazy" }}
//
// Trailing arguments are attribute name/value pairs, an [attr.Attributes] or
// a map[string]any.
func (s *Shortcode) Func(ctx context.Context) func(source, title string, args ...any) (template.HTML, error) {
	return func(source, title string, args ...any) (template.HTML, error) {
		props, err := props(args)
		if err != nil {
			return "", fmt.Errorf("%s: %w", s.name, err)
		}

		out, err := s.Render(ctx, source, title, props)
		if err != nil {
			return "", err
		}

		return template.HTML(out), nil //nolint:gosec
	}
}

// FuncMap registers the shortcode under its name.
func (s *Shortcode) FuncMap(ctx context.Context) template.FuncMap {
	return template.FuncMap{s.name: s.Func(ctx)}
}

func props(args []any) (attr.Attributes, error) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case attr.Attributes:
			return v, nil
		case map[string]any:
			return attr.FromMap(v), nil
		}
	}

	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: attributes must be name/value pairs", ErrInvalidArgument)
	}

	var res attr.Attributes

	for i := 0; i < len(args); i += 2 {
		name, ok := args[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: attribute name %v is not a string", ErrInvalidArgument, args[i])
		}

		res = res.Set(name, args[i+1])
	}

	return res, nil
}
