package mdcode

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from the words following the language
// in a fence's info string, e.g. ```js file=utils.js region=setup.
type Meta map[string]string

// Get returns the metadata value for name, or an empty string if it is missing
// or the Meta is nil.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	return m[name]
}

// Has reports whether name was set, even to an empty value.
func (m Meta) Has(name string) bool {
	_, has := m[name]

	return has
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}\s*$`)
)

func parseMeta(input string) (Meta, error) {
	if len(strings.TrimSpace(input)) == 0 {
		return Meta{}, nil
	}

	if reJSON.MatchString(input) {
		var raw map[string]interface{}

		if err := json.Unmarshal([]byte(input), &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON metadata: %w", err)
		}

		meta := make(Meta, len(raw))
		for k, v := range raw {
			if s, ok := v.(string); ok {
				meta[k] = s
			} else {
				meta[k] = fmt.Sprint(v)
			}
		}

		return meta, nil
	}

	if subs := reBrackets.FindStringSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(input)
	if err != nil {
		return nil, err
	}

	meta := make(Meta)

	for _, word := range words {
		if key, value, found := strings.Cut(word, "="); found {
			meta[key] = value
		}
	}

	return meta, nil
}
