package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/codedemo/internal/mdcode"
	"github.com/ezerfernandes/codedemo/internal/region"
)

func TestExtract(t *testing.T) {
	blocks := mdcode.Blocks{
		{Lang: "js", Code: []byte("// @filename: utils.js\nexport const x = 1;\n")},
		{Lang: "js", Meta: mdcode.Meta{"file": "theme.js"}, Code: []byte("export const c = 'red';\n")},
		{Lang: "js", Code: []byte("console.log(x);\n")},
		{Lang: "sql", Code: []byte("select 1;\n")},
		{Lang: "html", Code: []byte("<p/>\n")},
	}

	fragments, err := Extract(context.Background(), blocks, nil)
	require.NoError(t, err)

	assert.Equal(t, []CodeBlock{
		{Filename: "utils.js", Code: "// @filename: utils.js\nexport const x = 1;\n"},
		{Filename: "theme.js", Code: "export const c = 'red';\n"},
		{Code: "console.log(x);\n"},
	}, fragments.JS)
	assert.Equal(t, []CodeBlock{{Code: "<p/>\n"}}, fragments.HTML)
	assert.Empty(t, fragments.CSS)
}

func TestExtractFilenameOnlyForJS(t *testing.T) {
	blocks := mdcode.Blocks{{Lang: "css", Code: []byte("/* @filename: a.css */ a{}")}}

	fragments, err := Extract(context.Background(), blocks, nil)
	require.NoError(t, err)

	assert.Equal(t, []CodeBlock{{Code: "/* @filename: a.css */ a{}"}}, fragments.CSS)
}

func TestExtractRegion(t *testing.T) {
	blocks := mdcode.Blocks{{
		Lang: "js",
		Meta: mdcode.Meta{"region": "demo"},
		Code: []byte("setup();\n// #region demo\nrun();\n// #endregion demo\nteardown();\n"),
	}}

	fragments, err := Extract(context.Background(), blocks, nil)
	require.NoError(t, err)

	assert.Equal(t, []CodeBlock{{Code: "run();\n"}}, fragments.JS)
}

func TestExtractMissingRegion(t *testing.T) {
	blocks := mdcode.Blocks{{Lang: "js", Meta: mdcode.Meta{"region": "nope"}, Code: []byte("run();\n")}}

	_, err := Extract(context.Background(), blocks, nil)

	var preprocessErr *PreprocessError
	require.ErrorAs(t, err, &preprocessErr)
	assert.ErrorIs(t, err, region.ErrNotFound)
}

func TestExpandPreprocessorOutputs(t *testing.T) {
	block := &mdcode.Block{Lang: "x", Code: []byte("src")}

	tests := []struct {
		name string
		out  Output
		want []Result
	}{
		{name: "single", out: Result{Type: TypeCSS, Output: "a"}, want: []Result{{Type: TypeCSS, Output: "a"}}},
		{name: "many", out: Results{{Type: TypeCSS}, {Type: TypeJS}}, want: []Result{{Type: TypeCSS}, {Type: TypeJS}}},
		{name: "none", out: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pre := map[string]Preprocessor{
				"x": PreprocessorFunc(func(context.Context, string) (Output, error) { return tt.out, nil }),
			}

			got, err := Expand(context.Background(), block, pre)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "lib/a.js", Filename("// @filename: lib/a.js\ncode"))
	assert.Equal(t, "@utils", Filename("/* @filename:@utils */"))
	assert.Equal(t, "", Filename("// @filename:\ncode"))
	assert.Equal(t, "", Filename("code"))
}
