package chunk

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// MetadataError reports fence metadata that could not be decoded.
type MetadataError struct {
	Text string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("invalid chunk metadata %q: %v", e.Text, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

var (
	reArray    = regexp.MustCompile(`^\s*\[`)
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}\s*$`)
)

// Decode parses the metadata attached to an opening fence. A JSON array yields
// one Meta per element, a JSON object yields exactly one. Brace-delimited
// key=value words, such as {file=main.go line=3}, are accepted as well.
//
// Each object is matched against the operations in a fixed order: Diff
// (first and last), Insert (line), Region (region) and finally Append, which
// matches anything.
func Decode(text []byte) ([]Meta, error) {
	objects, err := parseObjects(text)
	if err != nil {
		return nil, &MetadataError{Text: string(text), Err: err}
	}

	metas := make([]Meta, 0, len(objects))

	for _, obj := range objects {
		meta, err := obj.meta()
		if err != nil {
			return nil, &MetadataError{Text: string(text), Err: err}
		}

		metas = append(metas, meta)
	}

	return metas, nil
}

type fields map[string]json.RawMessage

func parseObjects(text []byte) ([]fields, error) {
	switch {
	case reArray.Match(text):
		var list []fields

		if err := json.Unmarshal(text, &list); err != nil {
			return nil, err
		}

		for i, obj := range list {
			if obj == nil {
				return nil, fmt.Errorf("entry %d: %w", i, errNotObject)
			}
		}

		return list, nil

	case reJSON.Match(text):
		var obj fields

		if err := json.Unmarshal(text, &obj); err != nil {
			return nil, err
		}

		return []fields{obj}, nil

	case reBrackets.Match(text):
		obj, err := parseWords(reBrackets.FindSubmatch(text)[1])
		if err != nil {
			return nil, err
		}

		return []fields{obj}, nil
	}

	return nil, errNotObject
}

func parseWords(input []byte) (fields, error) {
	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, err
	}

	obj := make(fields)

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx < 0 {
			continue
		}

		key, value := word[:idx], word[idx+1:]

		var raw []byte

		switch {
		case key == "removals":
			removals, err := parseRanges(value)
			if err != nil {
				return nil, err
			}

			raw, err = json.Marshal(removals)
			if err != nil {
				return nil, err
			}
		case isInteger(value):
			raw = []byte(value)
		default:
			raw, err = json.Marshal(value)
			if err != nil {
				return nil, err
			}
		}

		obj[key] = raw
	}

	return obj, nil
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)

	return err == nil
}

// parseRanges reads a comma separated list such as "2-3,7" into removals.
func parseRanges(value string) ([]Removal, error) {
	var removals []Removal

	for _, part := range strings.Split(value, ",") {
		if len(part) == 0 {
			continue
		}

		first, last, found := strings.Cut(part, "-")
		if !found {
			last = first
		}

		f, err := strconv.Atoi(first)
		if err != nil {
			return nil, fmt.Errorf("removal %q: %w", part, err)
		}

		l, err := strconv.Atoi(last)
		if err != nil {
			return nil, fmt.Errorf("removal %q: %w", part, err)
		}

		removals = append(removals, Removal{First: f, Last: l})
	}

	return removals, nil
}

func (f fields) meta() (Meta, error) {
	target, err := f.target()
	if err != nil {
		return Meta{}, err
	}

	removals, err := f.removals()
	if err != nil {
		return Meta{}, err
	}

	return Meta{Target: target, Op: f.operation(), Removals: removals}, nil
}

func (f fields) operation() Operation { //nolint:ireturn
	if first, ok := f.index("first"); ok {
		if last, ok := f.index("last"); ok {
			return Diff{From: first, To: last}
		}
	}

	if at, ok := f.index("line"); ok {
		return Insert{At: at}
	}

	if name, ok := f.str("region"); ok && len(name) != 0 {
		return Region{Name: name}
	}

	return Append{}
}

func (f fields) present(key string) (json.RawMessage, bool) {
	raw, has := f[key]
	if !has || string(raw) == "null" {
		return nil, false
	}

	return raw, true
}

func (f fields) index(key string) (int, bool) {
	raw, ok := f.present(key)
	if !ok {
		return 0, false
	}

	var value int

	if err := json.Unmarshal(raw, &value); err != nil || value < 0 {
		return 0, false
	}

	return value, true
}

func (f fields) str(key string) (string, bool) {
	raw, ok := f.present(key)
	if !ok {
		return "", false
	}

	var value string

	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}

	return value, true
}

func (f fields) target() (Target, error) {
	if _, ok := f.present("file"); !ok {
		return Target{}, nil
	}

	name, ok := f.str("file")
	if !ok {
		return Target{}, errBadFile
	}

	return Named(name), nil
}

func (f fields) removals() ([]Removal, error) {
	raw, ok := f.present("removals")
	if !ok {
		return nil, nil
	}

	var list []fields

	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("removals: %w", err)
	}

	removals := make([]Removal, 0, len(list))

	for i, obj := range list {
		first, okFirst := obj.index("first")
		last, okLast := obj.index("last")

		if !okFirst || !okLast {
			return nil, fmt.Errorf("removal %d: %w", i, errBadRemoval)
		}

		removals = append(removals, Removal{First: first, Last: last})
	}

	return removals, nil
}

var (
	errNotObject  = errors.New("metadata must be an object or an array of objects")
	errBadFile    = errors.New(`"file" must be a string or null`)
	errBadRemoval = errors.New(`"first" and "last" must be non-negative integers`)
)
