// Package config loads codedemo settings from a config file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// FileName is the config file name looked up in the working directory,
	// without extension.
	FileName = ".codedemo"
	// EnvPrefix prefixes the environment variables overriding settings.
	EnvPrefix = "CODEDEMO"
)

// DefaultTemplate is the document used when no template is configured.
const DefaultTemplate = `<!doctype html>
<html>
<head>
<style>{{ .CSS }}</style>
</head>
<body>
{{ .HTML }}
<script type="module">{{ .JS }}</script>
</body>
</html>
`

// Config holds the shortcode settings.
type Config struct {
	Name string `mapstructure:"name"`
	// Template is the path of a Go text/template rendering the document,
	// relative to the config file.
	Template string `mapstructure:"template"`
	Bundle   bool   `mapstructure:"bundle"`
	// Iframe holds attributes set on every iframe.
	Iframe     map[string]any          `mapstructure:"iframe"`
	Preprocess map[string]Preprocessor `mapstructure:"preprocess"`

	// dir is the directory relative paths resolve from.
	dir string
}

// Preprocessor configures the preprocessor of one fence language. Exactly one
// of Builtin, Command and Script is set.
type Preprocessor struct {
	Builtin string `mapstructure:"builtin"`
	Command string `mapstructure:"command"`
	Script  string `mapstructure:"script"`
	// Type is the fragment type a command produces.
	Type string `mapstructure:"type"`
}

var (
	errAmbiguousPreprocessor = errors.New("set exactly one of builtin, command or script")
	errMissingType           = errors.New("command preprocessors need a type")
)

// Load reads the config file at path, or .codedemo.{yaml,toml,json} in the
// working directory when path is empty. A missing default file is not an
// error. CODEDEMO_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("name", "codedemo")
	v.SetDefault("template", "")
	v.SetDefault("bundle", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	dir := "."

	if path != "" {
		v.SetConfigFile(path)
		dir = filepath.Dir(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.dir = dir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the preprocessor entries.
func (c *Config) Validate() error {
	for lang, p := range c.Preprocess {
		set := 0

		for _, s := range []string{p.Builtin, p.Command, p.Script} {
			if s != "" {
				set++
			}
		}

		if set != 1 {
			return fmt.Errorf("preprocess.%s: %w", lang, errAmbiguousPreprocessor)
		}

		if p.Command != "" && p.Type == "" {
			return fmt.Errorf("preprocess.%s: %w", lang, errMissingType)
		}
	}

	return nil
}

// Dir returns the directory relative paths in the config resolve from.
func (c *Config) Dir() string {
	if c.dir == "" {
		return "."
	}

	return c.dir
}

// DocumentTemplate returns the configured template source, or
// [DefaultTemplate].
func (c *Config) DocumentTemplate() (string, error) {
	if c.Template == "" {
		return DefaultTemplate, nil
	}

	path := c.Template
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Dir(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	return string(data), nil
}
