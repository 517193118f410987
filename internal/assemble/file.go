package assemble

import (
	"github.com/ezerfernandes/codemd/internal/chunk"
	"github.com/ezerfernandes/codemd/internal/region"
)

// File is the line sequence accumulated for one target.
type File struct {
	Target chunk.Target
	Lines  []string
}

// Name returns the file name of the target, or defaultName for the unnamed
// target.
func (f *File) Name(defaultName string) string {
	if name, ok := f.Target.Name(); ok {
		return name
	}

	return defaultName
}

func (f *File) apply(desc *chunk.Descriptor) error {
	if desc.Target != f.Target {
		return &TargetMismatchError{File: f.Target, Chunk: desc.Target}
	}

	if err := f.primary(desc); err != nil {
		return err
	}

	// Each removal sees the lines left by the previous one.
	for _, r := range desc.Removals {
		if err := f.remove("removal", r.First, r.Last); err != nil {
			return err
		}
	}

	return nil
}

func (f *File) primary(desc *chunk.Descriptor) error {
	switch op := desc.Op.(type) {
	case chunk.Insert:
		return f.insert("insert", op.At, desc.Lines)

	case chunk.Diff:
		if err := f.remove("diff", op.From, op.To); err != nil {
			return err
		}

		return f.insert("diff", op.From, desc.Lines)

	case chunk.Region:
		lines, found, err := region.Replace(f.Lines, op.Name, desc.Lines)
		if err != nil {
			return err
		}

		if !found {
			return &RegionNotFoundError{Target: f.Target, Name: op.Name}
		}

		f.Lines = lines

		return nil

	default:
		f.Lines = append(f.Lines, desc.Lines...)

		return nil
	}
}

func (f *File) insert(op string, at int, lines []string) error {
	if at < 0 || at > len(f.Lines) {
		return &RangeError{Target: f.Target, Op: op, First: at, Last: at, Len: len(f.Lines)}
	}

	res := make([]string, 0, len(f.Lines)+len(lines))

	res = append(res, f.Lines[:at]...)
	res = append(res, lines...)
	res = append(res, f.Lines[at:]...)

	f.Lines = res

	return nil
}

func (f *File) remove(op string, first, last int) error {
	if first < 0 || last < first || last >= len(f.Lines) {
		return &RangeError{Target: f.Target, Op: op, First: first, Last: last, Len: len(f.Lines)}
	}

	f.Lines = append(f.Lines[:first], f.Lines[last+1:]...)

	return nil
}
