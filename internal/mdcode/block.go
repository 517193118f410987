package mdcode

import (
	"fmt"
	"strings"

	"github.com/ezerfernandes/codemd/internal/chunk"
)

// Block is a fenced code block carrying chunk metadata.
type Block struct {
	Lang      string
	Meta      []byte
	Code      []byte
	StartLine int
	EndLine   int
}

type Blocks []*Block

// Lines returns the code of the block split into lines, without line
// terminators.
func (b *Block) Lines() []string {
	return splitLines(b.Code)
}

// Descriptors decodes the block metadata into one descriptor per entry. Batch
// metadata yields several descriptors sharing the same lines.
func (b *Block) Descriptors() ([]chunk.Descriptor, error) {
	metas, err := chunk.Decode(b.Meta)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", b.StartLine, err)
	}

	lines := b.Lines()
	descriptors := make([]chunk.Descriptor, 0, len(metas))

	for _, meta := range metas {
		descriptors = append(descriptors, chunk.Descriptor{
			Meta:  meta,
			Lang:  b.Lang,
			Lines: lines,
			Line:  b.StartLine,
		})
	}

	return descriptors, nil
}

func splitLines(source []byte) []string {
	if len(source) == 0 {
		return nil
	}

	lines := strings.Split(string(source), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
