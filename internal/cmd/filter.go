package cmd

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/ezerfernandes/codedemo/internal/mdcode"
)

type filterFunc func(lang string, meta mdcode.Meta) bool

func filter(lang []string, meta map[string]string) (filterFunc, error) {
	langs := make([]glob.Glob, 0, len(lang))

	for _, pattern := range lang {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid --lang pattern %q: %w", pattern, err)
		}

		langs = append(langs, g)
	}

	metas := make(map[string]glob.Glob, len(meta))

	for key, pattern := range meta {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid --meta pattern %s=%q: %w", key, pattern, err)
		}

		metas[key] = g
	}

	return func(l string, m mdcode.Meta) bool {
		if !matchAny(langs, l) {
			return false
		}

		for key, g := range metas {
			if !m.Has(key) || !g.Match(m.Get(key)) {
				return false
			}
		}

		return true
	}, nil
}

func matchAny(globs []glob.Glob, s string) bool {
	if len(globs) == 0 {
		return true
	}

	for _, g := range globs {
		if g.Match(s) {
			return true
		}
	}

	return false
}

// unfence returns the fences of source accepted by accept.
func unfence(source []byte, accept filterFunc) (mdcode.Blocks, error) {
	var blocks mdcode.Blocks

	err := mdcode.Walk(source, func(block *mdcode.Block) error {
		if accept == nil || accept(block.Lang, block.Meta) {
			blocks = append(blocks, block)
		}

		return nil
	})

	return blocks, err
}
