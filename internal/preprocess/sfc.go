package preprocess

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ezerfernandes/codedemo/internal/demo"
)

// SFC splits a single-file component into its markup, script and styles:
//
//	<template><button>Click me</button></template>
//	<script>console.log("ready");</script>
//	<style>button { padding: 0 }</style>
//
// The fragments are returned in that order; sections that are missing are
// left out. All <style> sections are joined.
func SFC() demo.Preprocessor {
	return demo.PreprocessorFunc(func(_ context.Context, source string) (demo.Output, error) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
		if err != nil {
			return nil, fmt.Errorf("parse component: %w", err)
		}

		var results demo.Results

		if tmpl := doc.Find("template").First(); tmpl.Length() > 0 {
			markup, err := tmpl.Html()
			if err != nil {
				return nil, fmt.Errorf("render template: %w", err)
			}

			results = append(results, demo.Result{Type: demo.TypeHTML, Output: strings.TrimSpace(markup)})
		}

		if script := doc.Find("script").First(); script.Length() > 0 {
			results = append(results, demo.Result{Type: demo.TypeJS, Output: strings.TrimSpace(script.Text())})
		}

		if styles := doc.Find("style"); styles.Length() > 0 {
			var css strings.Builder

			styles.Each(func(_ int, style *goquery.Selection) {
				css.WriteString(strings.TrimSpace(style.Text()))
			})

			results = append(results, demo.Result{Type: demo.TypeCSS, Output: css.String()})
		}

		return results, nil
	})
}
