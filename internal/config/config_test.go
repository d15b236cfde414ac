package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.tmpl", "<style>{{ .CSS }}</style>")
	path := writeFile(t, dir, "codedemo.yaml", `
name: demo
template: doc.tmpl
bundle: true
iframe:
  class: code-demo
  loading: lazy
preprocess:
  ts:
    builtin: ts
  scss:
    command: sass --stdin
    type: css
  md:
    script: "src => ({type: 'html', output: src})"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.True(t, cfg.Bundle)
	assert.Equal(t, map[string]any{"class": "code-demo", "loading": "lazy"}, cfg.Iframe)
	assert.Equal(t, Preprocessor{Builtin: "ts"}, cfg.Preprocess["ts"])
	assert.Equal(t, Preprocessor{Command: "sass --stdin", Type: "css"}, cfg.Preprocess["scss"])
	assert.Equal(t, "src => ({type: 'html', output: src})", cfg.Preprocess["md"].Script)
	assert.Equal(t, dir, cfg.Dir())

	tmpl, err := cfg.DocumentTemplate()
	require.NoError(t, err)
	assert.Equal(t, "<style>{{ .CSS }}</style>", tmpl)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "codedemo.toml", `
name = "demo"

[iframe]
width = "100%"

[preprocess.vue]
builtin = "sfc"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.False(t, cfg.Bundle)
	assert.Equal(t, map[string]any{"width": "100%"}, cfg.Iframe)
	assert.Equal(t, "sfc", cfg.Preprocess["vue"].Builtin)
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "codedemo", cfg.Name)
	assert.False(t, cfg.Bundle)
	assert.Empty(t, cfg.Preprocess)

	tmpl, err := cfg.DocumentTemplate()
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, tmpl)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CODEDEMO_BUNDLE", "true")
	t.Setenv("CODEDEMO_NAME", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Bundle)
	assert.Equal(t, "from-env", cfg.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidPreprocessor(t *testing.T) {
	tests := map[string]string{
		"ambiguous":    "preprocess:\n  ts:\n    builtin: ts\n    script: 'x => x'\n",
		"empty":        "preprocess:\n  ts:\n    type: js\n",
		"missing type": "preprocess:\n  scss:\n    command: sass\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, t.TempDir(), "codedemo.yaml", content))
			assert.Error(t, err)
		})
	}
}

func TestDocumentTemplateMissing(t *testing.T) {
	cfg := &Config{Template: "missing.tmpl", dir: t.TempDir()}

	_, err := cfg.DocumentTemplate()
	assert.Error(t, err)
}
