// Package cmd implements the codemd command line.
package cmd

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/ezerfernandes/codemd/internal/config"
	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

// Execute runs the command line with the given arguments and returns the
// process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := rootCmd()

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", root.Name(), err)

		return 1
	}

	return 0
}

func rootCmd() *cobra.Command {
	opts := new(options)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:           "codemd",
		Short:         "Stitch Markdown code blocks into source files",
		Long:          rootHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return opts.configure(cmd)
		},

		DisableAutoGenTag: true,
	}

	flags := cmd.PersistentFlags()

	flags.StringVar(&opts.configFile, "config", config.DefaultFile, "configuration file")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
	flags.StringVar(&opts.parser, "parser", "lines", "block scanner: lines or commonmark")
	flags.StringSliceVarP(&opts.lang, "lang", "l", []string{"*"}, "only use blocks whose language matches these glob patterns")
	flags.StringSliceVarP(&opts.file, "file", "f", []string{"*"}, "only use blocks whose target file matches these glob patterns")
	flags.StringVar(&opts.defaultName, "default-name", "default.out", "file name for blocks without a target file")

	cmd.AddCommand(extractCmd(opts), listCmd(opts), execCmd(opts))

	return cmd
}
