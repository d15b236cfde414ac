// Package cmd implements the codedemo command line.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const stdinName = "-"

type options struct {
	config  string
	verbose bool
	lang    []string
	meta    map[string]string
	filter  filterFunc
	stdin   io.Reader
	logger  *log.Logger
}

// Execute runs the command line with args and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{
		stdin:  stdin,
		logger: log.NewWithOptions(stderr, log.Options{Prefix: "codedemo"}),
	}

	root := rootCmd(opts)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		opts.logger.Error(err)

		return 1
	}

	return 0
}

func rootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "codedemo",
		Short: "Render Markdown code fences as sandboxed iframe demos",
		Long: `codedemo collects the html, css and js code fences of a Markdown file and
renders them as a single <iframe> whose srcdoc holds the whole demo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.verbose {
				opts.logger.SetLevel(log.DebugLevel)
			}

			var err error

			opts.filter, err = filter(opts.lang, opts.meta)

			return err
		},

		DisableAutoGenTag: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "config file (default is ./.codedemo.{yaml,toml,json})")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	cmd.PersistentFlags().StringSliceVarP(&opts.lang, "lang", "l", []string{"*"}, "only use fences whose language matches one of these glob patterns")
	cmd.PersistentFlags().StringToStringVarP(&opts.meta, "meta", "m", nil, "only use fences whose metadata matches these key=glob pairs")

	cmd.AddCommand(renderCmd(opts), listCmd(opts))

	return cmd
}

// readSource returns the Markdown source named by args, reading standard
// input when there is none or it is "-".
func readSource(opts *options, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == stdinName {
		src, err := io.ReadAll(opts.stdin)

		return stdinName, src, err
	}

	src, err := os.ReadFile(args[0])

	return args[0], src, err
}
