package cmd

import (
	"os"

	"github.com/ezerfernandes/codemd/internal/chunk"
	"github.com/ezerfernandes/codemd/internal/mdcode"
)

// scan reads the document and returns the descriptors selected by the
// configured filter, in document order.
func scan(filename string, opts *options) ([]chunk.Descriptor, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	scanner, err := mdcode.Lookup(opts.cfg.Parser)
	if err != nil {
		return nil, err
	}

	descriptors, err := scanner(source)
	if err != nil {
		return nil, err
	}

	selected := descriptors[:0]

	for i := range descriptors {
		if opts.filter(&descriptors[i]) {
			selected = append(selected, descriptors[i])
		}
	}

	return selected, nil
}
