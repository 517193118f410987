// Package assemble stitches code chunks into files, applying each chunk's
// operation to the lines accumulated so far for its target.
package assemble

import (
	"fmt"

	"github.com/ezerfernandes/codemd/internal/chunk"
)

// Assembler accumulates files from descriptors applied in document order.
// Files are kept in the order their target was first seen.
type Assembler struct {
	files []*File
	index map[chunk.Target]int
}

// New returns an empty Assembler.
func New() *Assembler {
	return &Assembler{index: make(map[chunk.Target]int)}
}

// Apply locates or creates the file for the descriptor's target and applies
// the descriptor to it. A failed Apply may leave that file partially edited.
func (a *Assembler) Apply(desc *chunk.Descriptor) error {
	idx, has := a.index[desc.Target]
	if !has {
		idx = len(a.files)
		a.files = append(a.files, &File{Target: desc.Target})
		a.index[desc.Target] = idx
	}

	if err := a.files[idx].apply(desc); err != nil {
		if desc.Line > 0 {
			return fmt.Errorf("block at line %d: %w", desc.Line, err)
		}

		return err
	}

	return nil
}

// Files returns the assembled files in first-seen order.
func (a *Assembler) Files() []*File {
	return a.files
}

// Assemble applies every descriptor in order and returns the resulting files.
// Any error aborts the whole run and no files are returned.
func Assemble(descriptors []chunk.Descriptor) ([]*File, error) {
	if len(descriptors) == 0 {
		return nil, ErrNoBlocks
	}

	asm := New()

	for i := range descriptors {
		if err := asm.Apply(&descriptors[i]); err != nil {
			return nil, err
		}
	}

	return asm.Files(), nil
}
