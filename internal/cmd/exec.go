package cmd

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/codemd/internal/assemble"
	"github.com/ezerfernandes/codemd/internal/output"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

//go:embed help/exec.md
var execHelp string

func execCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "exec [flags] filename -- command",
		Aliases: []string{"e"},
		Short:   "Assemble files and run a shell command on them",
		Long:    execHelp,
		Args:    checkargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, args := script(cmd, args)
			if len(scr) == 0 {
				return errMissingCommand
			}

			if !cmd.Flag("dir").Changed {
				dir, err := os.MkdirTemp(".", "codemd-exec-")
				if err != nil {
					return err
				}

				opts.dir = dir

				if !opts.keep {
					defer os.RemoveAll(dir)
				}
			}

			return execRun(args[0], opts, scr, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "directory to assemble the files into (default: a temporary directory)")
	cmd.Flags().BoolVarP(&opts.keep, "keep", "k", false, "don't remove the temporary directory")

	return cmd
}

// checkargs expects the document name before "--" and a command after it.
func checkargs(cmd *cobra.Command, args []string) error {
	n := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		n = dash
	}

	if n != 1 {
		return fmt.Errorf("%w, got %d", errFilename, n)
	}

	return nil
}

func script(cmd *cobra.Command, args []string) (string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return "", args
	}

	return strings.Join(args[dash:], " "), args[:dash]
}

func execRun(filename string, opts *options, scr string, stdin io.Reader, stdout, stderr io.Writer) error {
	files, err := assembleFile(filename, opts)
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(opts.dir)
	if err != nil {
		return err
	}

	if err := output.Write(output.Dir(absDir), files, opts.cfg.DefaultName, opts.status); err != nil {
		return err
	}

	expanded := expandCommand(scr, files, absDir, opts.cfg.DefaultName)

	opts.status("--- %s (%d files) ---\n", filepath.Base(filename), len(files))

	exitCode, err := runCommand(expanded, absDir, stdin, stdout, stderr)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		return fmt.Errorf("command exited with %d", exitCode)
	}

	return nil
}

func expandCommand(scr string, files []*assemble.File, dir, defaultName string) string {
	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = quote(filepath.Join(dir, file.Name(defaultName)))
	}

	expanded := strings.ReplaceAll(scr, "{}", strings.Join(paths, " "))
	expanded = strings.ReplaceAll(expanded, "{dir}", quote(dir))

	return expanded
}

func quote(s string) string {
	if quoted, err := syntax.Quote(s, syntax.LangBash); err == nil {
		return quoted
	}

	return s
}

func runCommand(command, dir string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.Dir(dir), interp.StdIO(stdin, stdout, stderr))
	if err != nil {
		return -1, err
	}

	err = runner.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}

var (
	errMissingCommand = errors.New("command is required after '--'")
	errFilename       = errors.New("exactly one filename is required before '--'")
)
