// Package mdcode finds fenced code blocks carrying chunk metadata in Markdown
// documents.
package mdcode

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ezerfernandes/codemd/internal/chunk"
)

// Scanner turns a Markdown document into descriptors in document order.
type Scanner func(source []byte) ([]chunk.Descriptor, error)

const (
	ScannerLines      = "lines"
	ScannerCommonMark = "commonmark"
)

var scanners = map[string]Scanner{
	ScannerLines:      ScanLines,
	ScannerCommonMark: ScanMarkdown,
}

// Lookup returns the scanner registered under name.
func Lookup(name string) (Scanner, error) {
	if scan, has := scanners[name]; has {
		return scan, nil
	}

	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScanner, name, strings.Join(Names(), ", "))
}

// Names lists the registered scanners.
func Names() []string {
	names := make([]string, 0, len(scanners))
	for name := range scanners {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

var (
	reOpener = regexp.MustCompile("^\\s*```[ \\t]*(\\w+)[ \\t]*(\\{.*\\}|\\[.*\\])\\s*$")
	reCloser = regexp.MustCompile("^\\s*```")
)

// ScanLines finds blocks line by line. A block opens on a fence followed by a
// language tag and brace or bracket delimited metadata, and closes on the
// next line starting with a fence, whatever follows it. Fences are not
// nested. A block left open at the end of the document is ignored.
func ScanLines(source []byte) ([]chunk.Descriptor, error) {
	var (
		descriptors []chunk.Descriptor
		block       *Block
		metas       []chunk.Descriptor
		code        strings.Builder
	)

	for i, line := range splitLines(source) {
		if block == nil {
			subs := reOpener.FindStringSubmatch(line)
			if subs == nil {
				continue
			}

			block = &Block{Lang: subs[1], Meta: []byte(subs[2]), StartLine: i + 1}

			var err error

			if metas, err = block.Descriptors(); err != nil {
				return nil, err
			}

			code.Reset()

			continue
		}

		if !reCloser.MatchString(line) {
			code.WriteString(line)
			code.WriteByte('\n')

			continue
		}

		block.Code = []byte(code.String())
		block.EndLine = i + 1

		lines := block.Lines()
		for _, desc := range metas {
			desc.Lines = lines
			descriptors = append(descriptors, desc)
		}

		block = nil
	}

	return descriptors, nil
}

// ScanMarkdown parses the document as CommonMark and collects the fenced code
// blocks whose info string carries metadata.
func ScanMarkdown(source []byte) ([]chunk.Descriptor, error) {
	blocks, err := Unfence(source)
	if err != nil {
		return nil, err
	}

	var descriptors []chunk.Descriptor

	for _, block := range blocks {
		d, err := block.Descriptors()
		if err != nil {
			return nil, err
		}

		descriptors = append(descriptors, d...)
	}

	return descriptors, nil
}

// ErrUnknownScanner is returned by [Lookup] for an unregistered name.
var ErrUnknownScanner = errors.New("unknown scanner")
