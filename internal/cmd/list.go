package cmd

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/codedemo/internal/config"
	"github.com/ezerfernandes/codedemo/internal/demo"
	"github.com/ezerfernandes/codedemo/internal/mdcode"
)

//go:embed help/list.md
var listHelp string

const metaFile = "file"

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"ls"},
		Short:   "List the code fences of a Markdown file and the fragments they produce",
		Long:    listHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.config)
			if err != nil {
				return err
			}

			preprocessors, err := newPreprocessors(cfg)
			if err != nil {
				return err
			}

			_, src, err := readSource(opts, args)
			if err != nil {
				return err
			}

			blocks, err := unfence(src, opts.filter)
			if err != nil {
				return err
			}

			tbl := table.New("#", "Lang", "Fragments", "File", "Lines").WithWriter(cmd.OutOrStdout())

			for i, block := range blocks {
				results, err := demo.Expand(cmd.Context(), block, preprocessors)
				if err != nil {
					return err
				}

				types, file := describe(block, results)

				tbl.AddRow(i, block.Lang, types, file, fmt.Sprintf("L%d-%d", block.StartLine, block.EndLine))
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}

	return cmd
}

// describe summarizes the fragments of a fence. Types that the document
// renderer never receives are shown in parentheses.
func describe(block *mdcode.Block, results []demo.Result) (string, string) {
	types := make([]string, 0, len(results))

	var files []string

	for _, result := range results {
		switch result.Type {
		case demo.TypeHTML, demo.TypeCSS:
			types = append(types, result.Type)
		case demo.TypeJS:
			types = append(types, result.Type)

			file := demo.Filename(result.Output)
			if file == "" {
				file = block.Meta.Get(metaFile)
			}

			if file != "" {
				files = append(files, file)
			}
		default:
			types = append(types, "("+result.Type+")")
		}
	}

	if len(types) == 0 {
		types = append(types, "-")
	}

	if len(files) == 0 {
		files = append(files, "-")
	}

	return strings.Join(types, ","), strings.Join(files, ",")
}
