// Package chunk describes code blocks extracted from a Markdown document and
// decodes the metadata attached to their opening fences.
package chunk

import "fmt"

// Target identifies the file a chunk belongs to. The zero value is the
// unnamed file, which is written under a caller-supplied default name.
type Target struct {
	name  string
	named bool
}

// Named returns the target for the given file name. An empty name yields the
// unnamed target.
func Named(name string) Target {
	if len(name) == 0 {
		return Target{}
	}

	return Target{name: name, named: true}
}

// Name returns the file name and whether the target is named.
func (t Target) Name() (string, bool) {
	return t.name, t.named
}

func (t Target) String() string {
	if !t.named {
		return "<default>"
	}

	return t.name
}

// Operation is one of [Append], [Insert], [Diff] or [Region].
type Operation interface {
	fmt.Stringer
	operation()
}

// Append adds the chunk lines to the end of the file.
type Append struct{}

// Insert places the chunk lines so that the first one lands at index At,
// shifting the lines at and after At.
type Insert struct {
	At int
}

// Diff replaces the inclusive line range [From, To] with the chunk lines.
type Diff struct {
	From int
	To   int
}

// Region replaces the body of the named #region with the chunk lines.
type Region struct {
	Name string
}

func (Append) operation() {}
func (Insert) operation() {}
func (Diff) operation()   {}
func (Region) operation() {}

func (Append) String() string   { return "append" }
func (o Insert) String() string { return fmt.Sprintf("insert@%d", o.At) }
func (o Diff) String() string   { return fmt.Sprintf("diff[%d,%d]", o.From, o.To) }
func (o Region) String() string { return "region:" + o.Name }

// Removal deletes the inclusive line range [First, Last] after the primary
// operation has been applied.
type Removal struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

func (r Removal) String() string {
	return fmt.Sprintf("[%d,%d]", r.First, r.Last)
}

// Meta is the decoded metadata of a single chunk.
type Meta struct {
	Target   Target
	Op       Operation
	Removals []Removal
}

// Descriptor is a code block ready to be applied to its target file.
type Descriptor struct {
	Meta

	Lang  string
	Lines []string
	// Line is the 1-based document line of the opening fence.
	Line int
}
