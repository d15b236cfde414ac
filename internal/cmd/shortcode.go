package cmd

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ezerfernandes/codedemo/internal/attr"
	"github.com/ezerfernandes/codedemo/internal/config"
	"github.com/ezerfernandes/codedemo/internal/demo"
	"github.com/ezerfernandes/codedemo/internal/preprocess"
)

func newShortcode(cfg *config.Config) (*demo.Shortcode, error) {
	src, err := cfg.DocumentTemplate()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("document").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("invalid document template: %w", err)
	}

	preprocessors, err := newPreprocessors(cfg)
	if err != nil {
		return nil, err
	}

	return demo.New(demo.Options{
		Name: cfg.Name,
		RenderDocument: func(aggregate demo.Aggregate) (string, error) {
			var sb strings.Builder
			if err := tmpl.Execute(&sb, aggregate); err != nil {
				return "", err
			}

			return sb.String(), nil
		},
		IframeAttributes: attr.FromMap(cfg.Iframe),
		Preprocess:       preprocessors,
		Bundle:           cfg.Bundle,
	})
}

func newPreprocessors(cfg *config.Config) (map[string]demo.Preprocessor, error) {
	res := make(map[string]demo.Preprocessor, len(cfg.Preprocess))

	for lang, p := range cfg.Preprocess {
		var (
			preprocessor demo.Preprocessor
			err          error
		)

		switch {
		case p.Builtin != "":
			preprocessor, err = preprocess.Builtin(p.Builtin)
		case p.Command != "":
			preprocessor, err = preprocess.Command(p.Command, p.Type, cfg.Dir())
		default:
			preprocessor, err = preprocess.Script(p.Script)
		}

		if err != nil {
			return nil, fmt.Errorf("preprocess.%s: %w", lang, err)
		}

		res[lang] = preprocessor
	}

	return res, nil
}
