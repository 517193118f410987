// Package output writes assembled files to storage.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/codemd/internal/assemble"
)

const fileMode = 0o644

// Storage receives the contents of each assembled file.
type Storage interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// Dir is a Storage writing files directly into an OS directory.
type Dir string

// WriteFile creates or truncates the named file inside the directory.
func (d Dir) WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	path := filepath.Join(string(d), name)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(file)

	if _, err = w.Write(data); err != nil {
		return err
	}

	return w.Flush()
}

// Content renders lines as text, terminating every line with a single newline.
func Content(lines []string) []byte {
	var sb strings.Builder

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}

// Write stores every file under its target name, or defaultName for the
// unnamed target. Names must be plain file names, no subdirectories are
// created. Files are written one at a time; a failure stops the run
// and files already written are left in place.
func Write(storage Storage, files []*assemble.File, defaultName string, status func(string, ...interface{})) error {
	for _, file := range files {
		name := file.Name(defaultName)

		if err := checkName(name); err != nil {
			return err
		}

		if err := storage.WriteFile(name, Content(file.Lines), fileMode); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}

		if status != nil {
			status("wrote %s (%d lines)\n", name, len(file.Lines))
		}
	}

	return nil
}

func checkName(name string) error {
	if len(name) == 0 || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// ErrInvalidName is returned for target names that are not plain file names.
var ErrInvalidName = errors.New("invalid output file name")
