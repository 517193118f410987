package assemble

import (
	"errors"
	"fmt"

	"github.com/ezerfernandes/codemd/internal/chunk"
)

// ErrNoBlocks is returned by [Assemble] when there is nothing to assemble.
var ErrNoBlocks = errors.New("no code blocks found")

// RangeError reports a line index or range outside the current bounds of a
// file.
type RangeError struct {
	Target chunk.Target
	Op     string
	First  int
	Last   int
	Len    int
}

func (e *RangeError) Error() string {
	if e.First == e.Last {
		return fmt.Sprintf("%s: %s: line %d out of range (file has %d lines)", e.Target, e.Op, e.First, e.Len)
	}

	return fmt.Sprintf("%s: %s: lines [%d,%d] out of range (file has %d lines)", e.Target, e.Op, e.First, e.Last, e.Len)
}

// TargetMismatchError is returned when a descriptor is applied to a file with
// a different target.
type TargetMismatchError struct {
	File  chunk.Target
	Chunk chunk.Target
}

func (e *TargetMismatchError) Error() string {
	return fmt.Sprintf("chunk for %s applied to %s", e.Chunk, e.File)
}

// RegionNotFoundError is returned when a Region operation names a region the
// file does not contain.
type RegionNotFoundError struct {
	Target chunk.Target
	Name   string
}

func (e *RegionNotFoundError) Error() string {
	return fmt.Sprintf("%s: region %q not found", e.Target, e.Name)
}
