package cmd

import (
	"github.com/ezerfernandes/codemd/internal/chunk"
	"github.com/gobwas/glob"
)

type filterFunc func(desc *chunk.Descriptor) bool

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, value string) bool {
	if len(globs) == 0 {
		return true
	}

	for _, g := range globs {
		if g.Match(value) {
			return true
		}
	}

	return false
}

// filter selects descriptors by language and by the name of the file they
// end up in, defaultName standing for the unnamed target.
func filter(lang, file []string, defaultName string) (filterFunc, error) {
	langs, err := compile(lang)
	if err != nil {
		return nil, err
	}

	files, err := compile(file)
	if err != nil {
		return nil, err
	}

	return func(desc *chunk.Descriptor) bool {
		name, named := desc.Target.Name()
		if !named {
			name = defaultName
		}

		return matchAny(langs, desc.Lang) && matchAny(files, name)
	}, nil
}
