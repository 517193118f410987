// Package region locates and replaces named #region/#endregion sections in a
// file held as a sequence of lines.
package region

import (
	"fmt"
	"regexp"
)

const (
	reSpec       = `[!"#$%%&'()*+,\-./:;<=>?@[\\\]^_{|}~]`
	reLineBegin  = `^[[:blank:]]*`
	reLineEnd    = `*[[:blank:]]*\r?$`
	regionFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#region[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
	namedendFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#endregion[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
)

var reEnd = regexp.MustCompile(reLineBegin + reSpec +
	`+[[:blank:]]*#endregion[[:blank:]]*` +
	reSpec + reLineEnd)

func marker(format string, name string) (*regexp.Regexp, error) {
	return regexp.Compile(fmt.Sprintf(format, regexp.QuoteMeta(name)))
}

func indexOf(lines []string, from int, re *regexp.Regexp) int {
	for i := from; i < len(lines); i++ {
		if re.MatchString(lines[i]) {
			return i
		}
	}

	return -1
}

// Find returns the half-open range [begin, end) of body lines between the
// #region and #endregion markers with the given name. An #endregion naming the
// region is preferred over the first anonymous one.
func Find(lines []string, name string) (int, int, bool, error) {
	reBegin, err := marker(regionFormat, name)
	if err != nil {
		return 0, 0, false, err
	}

	begin := indexOf(lines, 0, reBegin)
	if begin < 0 {
		return 0, 0, false, nil
	}

	namedEnd, err := marker(namedendFormat, name)
	if err != nil {
		return 0, 0, false, err
	}

	end := indexOf(lines, begin+1, namedEnd)
	if end < 0 {
		end = indexOf(lines, begin+1, reEnd)
		if end < 0 {
			return 0, 0, false, nil
		}
	}

	return begin + 1, end, true, nil
}

// Read returns the body of the named region. The bool return indicates
// whether the region was found.
func Read(lines []string, name string) ([]string, bool, error) {
	begin, end, found, err := Find(lines, name)
	if err != nil || !found {
		return nil, false, err
	}

	return lines[begin:end], true, nil
}

// Replace substitutes the body of the named region with value and returns the
// updated lines. The markers are kept. The bool return indicates whether the
// region was found.
func Replace(lines []string, name string, value []string) ([]string, bool, error) {
	begin, end, found, err := Find(lines, name)
	if err != nil || !found {
		return nil, false, err
	}

	res := make([]string, 0, len(lines)-(end-begin)+len(value))

	res = append(res, lines[:begin]...)
	res = append(res, value...)
	res = append(res, lines[end:]...)

	return res, true, nil
}
