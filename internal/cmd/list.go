package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/ezerfernandes/codemd/internal/chunk"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] filename",
		Aliases: []string{"ls"},
		Short:   "List code blocks and their metadata",
		Long:    listHelp,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := scan(args[0], opts)
			if err != nil {
				return err
			}

			printDescriptors(cmd.OutOrStdout(), descriptors, opts.cfg.DefaultName)

			return nil
		},

		DisableAutoGenTag: true,
	}

	return cmd
}

func printDescriptors(out io.Writer, descriptors []chunk.Descriptor, defaultName string) {
	tbl := table.New("Line", "Lang", "File", "Operation", "Lines", "Removals").WithWriter(out)

	for _, desc := range descriptors {
		name, named := desc.Target.Name()
		if !named {
			name = defaultName
		}

		tbl.AddRow(desc.Line, desc.Lang, name, desc.Op, len(desc.Lines), removals(desc.Removals))
	}

	tbl.Print()
}

func removals(list []chunk.Removal) string {
	if len(list) == 0 {
		return "-"
	}

	parts := make([]string, len(list))
	for i, r := range list {
		parts[i] = fmt.Sprint(r)
	}

	return strings.Join(parts, " ")
}
