// Package region selects named #region/#endregion sections in fence content.
//
// A marker is a line holding a comment token followed by the keyword, so the
// same syntax works in HTML, CSS and JavaScript fences:
//
//	// #region setup
//	/* #endregion setup */
//	<!-- #region markup -->
package region

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	reSpec      = `[!"#$%%&'()*+,\-./:;<=>?@[\\\]^_{|}~]`
	reLineBegin = `(?m)^[[:blank:]]*`
	reLineEnd   = `*[[:blank:]]*(?:\r?\n|\z)`

	beginFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#region[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
	namedEndFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#endregion[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
)

var (
	reAnyMarker = regexp.MustCompile(fmt.Sprintf(reLineBegin+reSpec+
		`+[[:blank:]]*#(?:end)?region\b[^\n]*(?:\n|\z)`))
	reAnyEnd = regexp.MustCompile(fmt.Sprintf(reLineBegin + reSpec +
		`+[[:blank:]]*#endregion[[:blank:]]*` +
		reSpec + reLineEnd))
)

// ErrNotFound is returned by [Select] when the named region does not exist.
var ErrNotFound = errors.New("region not found")

func marker(format, name string) (*regexp.Regexp, error) {
	return regexp.Compile(fmt.Sprintf(format, regexp.QuoteMeta(name)))
}

// Select returns the content between the #region and #endregion markers with
// the given name. An unnamed #endregion closes the region when no named one
// follows it. Marker lines of nested regions are removed from the result.
func Select(source, name string) (string, error) {
	begin, err := marker(beginFormat, name)
	if err != nil {
		return "", err
	}

	idxBegin := begin.FindStringIndex(source)
	if idxBegin == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	rest := source[idxBegin[1]:]

	end, err := marker(namedEndFormat, name)
	if err != nil {
		return "", err
	}

	idxEnd := end.FindStringIndex(rest)
	if idxEnd == nil {
		idxEnd = reAnyEnd.FindStringIndex(rest)
		if idxEnd == nil {
			return "", fmt.Errorf("%w: %s has no #endregion", ErrNotFound, name)
		}
	}

	return Strip(rest[:idxEnd[0]]), nil
}

// Strip removes every #region and #endregion marker line from source.
func Strip(source string) string {
	return reAnyMarker.ReplaceAllString(source, "")
}
