package assemble

import (
	"testing"

	"github.com/ezerfernandes/codemd/internal/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desc(target chunk.Target, op chunk.Operation, lines ...string) chunk.Descriptor {
	return chunk.Descriptor{Meta: chunk.Meta{Target: target, Op: op}, Lang: "go", Lines: lines}
}

func appendAll(lines ...string) chunk.Descriptor {
	return desc(chunk.Target{}, chunk.Append{}, lines...)
}

func withRemovals(d chunk.Descriptor, removals ...chunk.Removal) chunk.Descriptor {
	d.Removals = removals

	return d
}

func assembleOne(t *testing.T, descriptors ...chunk.Descriptor) []string {
	t.Helper()

	files, err := Assemble(descriptors)
	require.NoError(t, err)
	require.Len(t, files, 1)

	return files[0].Lines
}

func TestAssembleAppend(t *testing.T) {
	t.Parallel()

	lines := assembleOne(t,
		appendAll("line 0", "line 1"),
		appendAll(),
		appendAll("line 2", "line 3"),
	)

	assert.Equal(t, []string{"line 0", "line 1", "line 2", "line 3"}, lines)
}

func TestAssembleInsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   int
		want []string
	}{
		{name: "front", at: 0, want: []string{"x", "y", "a", "b", "c"}},
		{name: "middle", at: 1, want: []string{"a", "x", "y", "b", "c"}},
		{name: "end", at: 3, want: []string{"a", "b", "c", "x", "y"}},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := assembleOne(t,
				appendAll("a", "b", "c"),
				desc(chunk.Target{}, chunk.Insert{At: tt.at}, "x", "y"),
			)

			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestAssembleInsertIntoNewFile(t *testing.T) {
	t.Parallel()

	lines := assembleOne(t, desc(chunk.Named("a.go"), chunk.Insert{At: 0}, "x"))

	assert.Equal(t, []string{"x"}, lines)
}

func TestAssembleDiff(t *testing.T) {
	t.Parallel()

	lines := assembleOne(t,
		appendAll("a", "b", "c", "d"),
		desc(chunk.Target{}, chunk.Diff{From: 1, To: 2}, "x"),
	)

	assert.Equal(t, []string{"a", "x", "d"}, lines)
}

func TestAssembleDiffSingleLineKeepsLength(t *testing.T) {
	t.Parallel()

	lines := assembleOne(t,
		appendAll("a", "b", "c"),
		desc(chunk.Target{}, chunk.Diff{From: 2, To: 2}, "z"),
	)

	assert.Equal(t, []string{"a", "b", "z"}, lines)
}

func TestAssembleDiffMatchesRemoveThenInsert(t *testing.T) {
	t.Parallel()

	diffed := assembleOne(t,
		appendAll("a", "b", "c", "d", "e"),
		desc(chunk.Target{}, chunk.Diff{From: 1, To: 3}, "x", "y"),
	)

	inserted := assembleOne(t,
		appendAll("a", "b", "c", "d", "e"),
		withRemovals(appendAll(), chunk.Removal{First: 1, Last: 3}),
		desc(chunk.Target{}, chunk.Insert{At: 1}, "x", "y"),
	)

	assert.Equal(t, inserted, diffed)
}

func TestAssembleRemovalsCompound(t *testing.T) {
	t.Parallel()

	lines := assembleOne(t,
		withRemovals(appendAll("0", "1", "2", "3", "4"),
			chunk.Removal{First: 2, Last: 2},
			chunk.Removal{First: 2, Last: 2},
		),
	)

	assert.Equal(t, []string{"0", "1", "4"}, lines)
}

func TestAssembleRemovalsAfterPrimary(t *testing.T) {
	t.Parallel()

	lines := assembleOne(t,
		appendAll("a", "b", "c"),
		withRemovals(desc(chunk.Target{}, chunk.Insert{At: 0}, "x", "y"),
			chunk.Removal{First: 3, Last: 4},
		),
	)

	assert.Equal(t, []string{"x", "y", "a"}, lines)
}

func TestAssembleRegion(t *testing.T) {
	t.Parallel()

	target := chunk.Named("main.go")

	lines := assembleOne(t,
		desc(target, chunk.Append{}, "func main() {", "	// #region body", "	// #endregion", "}"),
		desc(target, chunk.Region{Name: "body"}, "	run()"),
	)

	assert.Equal(t, []string{"func main() {", "	// #region body", "	run()", "	// #endregion", "}"}, lines)
}

func TestAssembleTargetsAreIsolated(t *testing.T) {
	t.Parallel()

	a, b := chunk.Named("a.go"), chunk.Named("b.go")

	all := []chunk.Descriptor{
		desc(a, chunk.Append{}, "a1", "a2"),
		desc(b, chunk.Append{}, "b1"),
		appendAll("d1"),
		desc(a, chunk.Insert{At: 1}, "a3"),
		desc(b, chunk.Diff{From: 0, To: 0}, "b2", "b3"),
		desc(chunk.Named("A.go"), chunk.Append{}, "upper"),
		appendAll("d2"),
	}

	files, err := Assemble(all)
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, file := range files {
		var subset []chunk.Descriptor

		for _, d := range all {
			if d.Target == file.Target {
				subset = append(subset, d)
			}
		}

		alone, err := Assemble(subset)
		require.NoError(t, err)
		require.Len(t, alone, 1)
		assert.Equal(t, alone[0].Lines, file.Lines, file.Target.String())
	}

	assert.Equal(t, a, files[0].Target)
	assert.Equal(t, []string{"a1", "a3", "a2"}, files[0].Lines)
	assert.Equal(t, []string{"b2", "b3"}, files[1].Lines)
	assert.Equal(t, []string{"d1", "d2"}, files[2].Lines)
	assert.Equal(t, []string{"upper"}, files[3].Lines)
}

func TestAssembleNoBlocks(t *testing.T) {
	t.Parallel()

	_, err := Assemble(nil)
	require.ErrorIs(t, err, ErrNoBlocks)
}

func TestAssembleOutOfRange(t *testing.T) {
	t.Parallel()

	base := appendAll("a", "b", "c")

	tests := []struct {
		name string
		next chunk.Descriptor
	}{
		{name: "insert past end", next: desc(chunk.Target{}, chunk.Insert{At: 4}, "x")},
		{name: "diff past end", next: desc(chunk.Target{}, chunk.Diff{From: 2, To: 3}, "x")},
		{name: "reversed diff", next: desc(chunk.Target{}, chunk.Diff{From: 2, To: 1}, "x")},
		{name: "removal past end", next: withRemovals(appendAll(), chunk.Removal{First: 3, Last: 3})},
		{name: "second removal past end", next: withRemovals(appendAll(),
			chunk.Removal{First: 0, Last: 1}, chunk.Removal{First: 1, Last: 1})},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			files, err := Assemble([]chunk.Descriptor{base, tt.next})

			var rerr *RangeError

			require.ErrorAs(t, err, &rerr)
			assert.Nil(t, files)
		})
	}
}

func TestAssembleDiffOnEmptyFile(t *testing.T) {
	t.Parallel()

	d := desc(chunk.Named("x.go"), chunk.Diff{From: 1, To: 2}, "x")
	d.Line = 7

	_, err := Assemble([]chunk.Descriptor{d})

	var rerr *RangeError

	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 0, rerr.Len)
	assert.Contains(t, err.Error(), "block at line 7")
}

func TestAssembleMissingRegion(t *testing.T) {
	t.Parallel()

	_, err := Assemble([]chunk.Descriptor{
		appendAll("a"),
		desc(chunk.Target{}, chunk.Region{Name: "body"}, "x"),
	})

	var rerr *RegionNotFoundError

	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "body", rerr.Name)
}

func TestFileTargetMismatch(t *testing.T) {
	t.Parallel()

	file := &File{Target: chunk.Named("a.go")}
	d := desc(chunk.Named("b.go"), chunk.Append{}, "x")

	var merr *TargetMismatchError

	require.ErrorAs(t, file.apply(&d), &merr)
	assert.Empty(t, file.Lines)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default.out", (&File{}).Name("default.out"))
	assert.Equal(t, "a.go", (&File{Target: chunk.Named("a.go")}).Name("default.out"))
}
