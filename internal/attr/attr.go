// Package attr holds ordered HTML attribute lists and the merge rules used for
// demo iframes.
package attr

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// Class is merged by union instead of being overridden.
	Class = "class"
	// Keywords is the key template engines use to flag keyword arguments.
	// It never reaches the output.
	Keywords = "__keywords"
)

// Attribute is a single HTML attribute. A nil Value leaves the attribute unset.
type Attribute struct {
	Name  string
	Value any
}

// Attributes is an ordered attribute list. Setting an existing name replaces
// its value in place, so serialization follows first-insertion order.
type Attributes []Attribute

func (a Attributes) index(name string) int {
	for i := range a {
		if a[i].Name == name {
			return i
		}
	}

	return -1
}

// Get returns the value stored under name and whether the name is present.
func (a Attributes) Get(name string) (any, bool) {
	if i := a.index(name); i >= 0 {
		return a[i].Value, true
	}

	return nil, false
}

// Set returns a list with name set to value. The receiver is not modified.
func (a Attributes) Set(name string, value any) Attributes {
	res := a.Clone()

	if i := res.index(name); i >= 0 {
		res[i].Value = value

		return res
	}

	return append(res, Attribute{Name: name, Value: value})
}

// Delete returns a list without name. The receiver is not modified.
func (a Attributes) Delete(name string) Attributes {
	res := make(Attributes, 0, len(a))

	for _, attribute := range a {
		if attribute.Name != name {
			res = append(res, attribute)
		}
	}

	return res
}

// Clone returns a shallow copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}

	res := make(Attributes, len(a))
	copy(res, a)

	return res
}

// Merge overlays props on global. Later values win, except for class whose
// global and per-call values are joined with a space. Duplicate class names
// are kept as written.
func Merge(global, props Attributes) Attributes {
	merged := global.Clone()

	for _, attribute := range props {
		merged = merged.Set(attribute.Name, attribute.Value)
	}

	globalClass, _ := global.Get(Class)
	propsClass, _ := props.Get(Class)

	if className := ClassNames(globalClass, propsClass); className != "" {
		merged = merged.Set(Class, className)
	}

	return merged
}

// ClassNames joins the non-empty class values with a space. Strings, string
// slices and numbers are accepted; anything else is ignored.
func ClassNames(values ...any) string {
	var names []string

	for _, value := range values {
		switch v := value.(type) {
		case string:
			if v != "" {
				names = append(names, v)
			}
		case []string:
			if s := ClassNames(toAny(v)...); s != "" {
				names = append(names, s)
			}
		case int, int64, float64:
			if s := fmt.Sprint(v); s != "0" {
				names = append(names, s)
			}
		}
	}

	return strings.Join(names, " ")
}

func toAny(values []string) []any {
	res := make([]any, len(values))
	for i, v := range values {
		res[i] = v
	}

	return res
}

// String renders the list as space separated key="value" pairs. Unset
// attributes are skipped; an empty string value still renders as key="".
func (a Attributes) String() string {
	var sb strings.Builder

	for _, attribute := range a {
		if attribute.Value == nil {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, `%s="%s"`, attribute.Name, format(attribute.Value))
	}

	return sb.String()
}

func format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	default:
		return fmt.Sprint(v)
	}
}

// FromMap builds a list from m with names in lexical order, since map
// iteration order is not stable.
func FromMap(m map[string]any) Attributes {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)

	res := make(Attributes, 0, len(names))
	for _, name := range names {
		res = append(res, Attribute{Name: name, Value: m[name]})
	}

	return res
}

// Parse builds a list from name=value pairs as given on a command line. A
// bare name yields an empty value.
func Parse(pairs []string) (Attributes, error) {
	var res Attributes

	for _, pair := range pairs {
		name, value, _ := strings.Cut(pair, "=")

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid attribute %q: missing name", pair)
		}

		res = res.Set(name, value)
	}

	return res, nil
}
