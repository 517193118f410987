// Package config holds the settings shared by the codemd commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory
// when none is given explicitly.
const DefaultFile = ".codemd.yaml"

// Config controls how a document is scanned and where its files are written.
type Config struct {
	// Output is the directory assembled files are written to.
	Output string `yaml:"output"`
	// DefaultName is the file name used for chunks without a target.
	DefaultName string `yaml:"default_name"`
	// Parser names the block scanner, "lines" or "commonmark".
	Parser string `yaml:"parser"`
	// Lang and File are glob patterns selecting blocks by language and target.
	Lang []string `yaml:"lang"`
	File []string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:      ".",
		DefaultName: "default.out",
		Parser:      "lines",
		Lang:        []string{"*"},
		File:        []string{"*"},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is only
// an error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the required settings are present.
func (c Config) Validate() error {
	if len(c.Output) == 0 {
		return fmt.Errorf("%w: output", ErrMissing)
	}

	if len(c.DefaultName) == 0 {
		return fmt.Errorf("%w: default_name", ErrMissing)
	}

	if len(c.Parser) == 0 {
		return fmt.Errorf("%w: parser", ErrMissing)
	}

	return nil
}

// ErrMissing is returned by [Config.Validate] for an empty required setting.
var ErrMissing = errors.New("missing required setting")
