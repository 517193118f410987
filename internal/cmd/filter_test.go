package cmd

import (
	"testing"

	"github.com/ezerfernandes/codemd/internal/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	match, err := filter([]string{"go", "rust"}, []string{"*.go", "default.out"}, "default.out")
	require.NoError(t, err)

	goFile := chunk.Descriptor{Lang: "go", Meta: chunk.Meta{Target: chunk.Named("cmd.go")}}
	rsFile := chunk.Descriptor{Lang: "rust", Meta: chunk.Meta{Target: chunk.Named("lib.rs")}}
	unnamed := chunk.Descriptor{Lang: "rust"}
	text := chunk.Descriptor{Lang: "text"}

	assert.True(t, match(&goFile))
	assert.False(t, match(&rsFile))
	assert.True(t, match(&unnamed))
	assert.False(t, match(&text))
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	t.Parallel()

	match, err := filter(nil, nil, "default.out")
	require.NoError(t, err)
	assert.True(t, match(&chunk.Descriptor{}))
}

func TestFilterBadPattern(t *testing.T) {
	t.Parallel()

	_, err := filter([]string{"[go"}, nil, "default.out")
	require.Error(t, err)
}
