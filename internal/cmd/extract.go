package cmd

import (
	_ "embed"
	"io"

	"github.com/ezerfernandes/codemd/internal/assemble"
	"github.com/ezerfernandes/codemd/internal/output"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/extract.md
var extractHelp string

func extractCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "extract [flags] filename",
		Aliases: []string{"x"},
		Short:   "Extract code blocks into files",
		Long:    extractHelp,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return extractRun(args[0], opts, cmd.OutOrStdout())
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "print the assembled files instead of writing them")

	return cmd
}

func assembleFile(filename string, opts *options) ([]*assemble.File, error) {
	descriptors, err := scan(filename, opts)
	if err != nil {
		return nil, err
	}

	opts.status("found %d code block(s) in %s\n", len(descriptors), filename)

	return assemble.Assemble(descriptors)
}

func extractRun(filename string, opts *options, out io.Writer) error {
	files, err := assembleFile(filename, opts)
	if err != nil {
		return err
	}

	if opts.dryRun {
		printFiles(out, files, opts.cfg.DefaultName)

		return nil
	}

	return output.Write(output.Dir(opts.cfg.Output), files, opts.cfg.DefaultName, opts.status)
}

func printFiles(out io.Writer, files []*assemble.File, defaultName string) {
	tbl := table.New("File", "Lines").WithWriter(out)

	for _, file := range files {
		tbl.AddRow(file.Name(defaultName), len(file.Lines))
	}

	tbl.Print()
}
