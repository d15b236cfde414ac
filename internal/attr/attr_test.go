package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		global Attributes
		props  Attributes
		want   string
	}{
		{
			name:   "class union keeps global order",
			global: Attributes{{"class", "one"}, {"width", "300"}, {"height", "600"}},
			props:  Attributes{{"class", "two"}},
			want:   `class="one two" width="300" height="600"`,
		},
		{
			name:   "per-call wins for other keys",
			global: Attributes{{"width", "300"}},
			props:  Attributes{{"width", "400"}, {"loading", "lazy"}},
			want:   `width="400" loading="lazy"`,
		},
		{
			name:   "duplicate classes are kept",
			global: Attributes{{"class", "demo"}},
			props:  Attributes{{"class", "demo"}},
			want:   `class="demo demo"`,
		},
		{
			name:  "per-call class only",
			props: Attributes{{"class", "two"}},
			want:  `class="two"`,
		},
		{
			name:   "unset per-call value drops the attribute",
			global: Attributes{{"width", "300"}, {"height", "600"}},
			props:  Attributes{{"width", nil}},
			want:   `height="600"`,
		},
		{
			name:   "unset per-call class falls back to global",
			global: Attributes{{"class", "one"}},
			props:  Attributes{{"class", nil}},
			want:   `class="one"`,
		},
		{
			name:   "empty values are emitted",
			global: Attributes{{"class", ""}, {"allowfullscreen", ""}},
			want:   `class="" allowfullscreen=""`,
		},
		{
			name: "nothing to merge",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.global, tt.props).String())
		})
	}
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	global := Attributes{{"class", "one"}}
	props := Attributes{{"class", "two"}}

	Merge(global, props)

	assert.Equal(t, Attributes{{"class", "one"}}, global)
	assert.Equal(t, Attributes{{"class", "two"}}, props)
}

func TestClassNames(t *testing.T) {
	assert.Equal(t, "a b c", ClassNames("a", nil, "", []string{"b", "c"}, true))
	assert.Equal(t, "1", ClassNames(0, 1))
	assert.Equal(t, "", ClassNames())
}

func TestStringFormatsValues(t *testing.T) {
	attrs := Attributes{{"width", 300}, {"hidden", true}, {"data-tags", []string{"x", "y"}}}

	assert.Equal(t, `width="300" hidden="true" data-tags="x y"`, attrs.String())
}

func TestDelete(t *testing.T) {
	attrs := Attributes{{Keywords, true}, {"width", "1"}}

	assert.Equal(t, Attributes{{"width", "1"}}, attrs.Delete(Keywords))
	assert.Len(t, attrs, 2)
}

func TestFromMap(t *testing.T) {
	attrs := FromMap(map[string]any{"width": "1", "class": "demo", "height": "2"})

	assert.Equal(t, `class="demo" height="2" width="1"`, attrs.String())
}

func TestParse(t *testing.T) {
	attrs, err := Parse([]string{"class=a", "allowfullscreen", "style=color: red", "class=b"})
	require.NoError(t, err)

	assert.Equal(t, `class="b" allowfullscreen="" style="color: red"`, attrs.String())
}

func TestParseMissingName(t *testing.T) {
	_, err := Parse([]string{"=value"})
	assert.Error(t, err)
}
