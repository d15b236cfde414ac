package cmd

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/codedemo/internal/attr"
	"github.com/ezerfernandes/codedemo/internal/config"
	"github.com/ezerfernandes/codedemo/internal/listing"
)

//go:embed help/render.md
var renderHelp string

func renderCmd(opts *options) *cobra.Command {
	var (
		title   string
		attrs   []string
		bundle  bool
		listed  bool
		style   string
		classes bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "render [flags] [filename]",
		Aliases: []string{"r"},
		Short:   "Render the code fences of a Markdown file as an iframe",
		Long:    renderHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.config)
			if err != nil {
				return err
			}

			if cmd.Flag("bundle").Changed {
				cfg.Bundle = bundle
			}

			props, err := attr.Parse(attrs)
			if err != nil {
				return err
			}

			shortcode, err := newShortcode(cfg)
			if err != nil {
				return err
			}

			name, src, err := readSource(opts, args)
			if err != nil {
				return err
			}

			blocks, err := unfence(src, opts.filter)
			if err != nil {
				return err
			}

			opts.logger.Debug("rendering", "source", name, "fences", len(blocks), "langs", blocks.Langs(), "bundle", cfg.Bundle)

			start := time.Now()

			out, err := shortcode.RenderBlocks(cmd.Context(), blocks, title, props)
			if err != nil {
				return err
			}

			opts.logger.Debug("rendered", "bytes", len(out), "elapsed", time.Since(start))

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
				return err
			}

			if !listed {
				return nil
			}

			html, err := listing.New(style, classes).Render(src)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), html)

			return err
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "iframe title (required)")
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "iframe attribute as name=value, may be repeated")
	cmd.Flags().BoolVarP(&bundle, "bundle", "b", false, "bundle JavaScript fences as modules (overrides config)")
	cmd.Flags().BoolVar(&listed, "listing", false, "print the highlighted source after the iframe")
	cmd.Flags().StringVar(&style, "style", listing.DefaultStyle, "highlighting style of the listing")
	cmd.Flags().BoolVar(&classes, "classes", false, "use CSS classes instead of inline styles in the listing")

	return cmd
}
