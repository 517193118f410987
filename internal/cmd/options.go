package cmd

import (
	"fmt"
	"io"

	"github.com/ezerfernandes/codemd/internal/config"
	"github.com/spf13/cobra"
)

type statusFunc func(format string, args ...interface{})

type options struct {
	cfg config.Config

	configFile  string
	quiet       bool
	parser      string
	lang        []string
	file        []string
	defaultName string
	output      string
	dir         string
	keep        bool
	dryRun      bool

	status statusFunc
	filter filterFunc
}

func (opts *options) createStatus(out io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(out, format, args...)
	}
}

// configure loads the configuration file and lets explicitly set flags
// override it.
func (opts *options) configure(cmd *cobra.Command) error {
	var err error

	opts.cfg, err = config.Load(opts.configFile, cmd.Flag("config").Changed)
	if err != nil {
		return err
	}

	if flag := cmd.Flag("parser"); flag.Changed {
		opts.cfg.Parser = opts.parser
	}

	if flag := cmd.Flag("lang"); flag.Changed {
		opts.cfg.Lang = opts.lang
	}

	if flag := cmd.Flag("file"); flag.Changed {
		opts.cfg.File = opts.file
	}

	if flag := cmd.Flag("default-name"); flag.Changed {
		opts.cfg.DefaultName = opts.defaultName
	}

	if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Changed {
		opts.cfg.Output = opts.output
	}

	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	opts.filter, err = filter(opts.cfg.Lang, opts.cfg.File, opts.cfg.DefaultName)

	return err
}
