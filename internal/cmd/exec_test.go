package cmd

import (
	"testing"

	"github.com/ezerfernandes/codemd/internal/assemble"
	"github.com/ezerfernandes/codemd/internal/chunk"
	"github.com/stretchr/testify/assert"
)

func TestExpandCommand(t *testing.T) {
	t.Parallel()

	files := []*assemble.File{
		{Target: chunk.Named("main.go")},
		{},
	}

	got := expandCommand("wc -l {} && ls {dir}", files, "/tmp/out dir", "default.out")

	assert.Equal(t, `wc -l '/tmp/out dir/main.go' '/tmp/out dir/default.out' && ls '/tmp/out dir'`, got)
}
