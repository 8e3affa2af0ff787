// Package config loads docnode's optional YAML configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
	"git.home.luguber.info/inful/docnode/internal/htmlnode"
	"git.home.luguber.info/inful/docnode/internal/logfields"
)

// DefaultPath is read when no configuration file is given explicitly.
const DefaultPath = "docnode.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment variables overriding file settings.
const (
	EnvFormat = "DOCNODE_FORMAT"
	EnvWrap   = "DOCNODE_WRAP"
)

// Config represents the application configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Inline InlineConfig `yaml:"inline"`
}

// OutputConfig controls how command results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// InlineConfig controls how inline markdown is turned into nodes.
type InlineConfig struct {
	Wrap       string   `yaml:"wrap"`        // Tag wrapping rendered inline text
	LinkProps  AttrList `yaml:"link_props"`  // Extra attributes for <a>
	ImageProps AttrList `yaml:"image_props"` // Extra attributes for <img>
}

// AttrList is a YAML mapping decoded with its key order preserved.
type AttrList []htmlnode.Attr

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *AttrList) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		*l = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of attributes", value.Line)
	}
	out := make(AttrList, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must be a scalar", val.Line, key.Value)
		}
		out = append(out, htmlnode.Attr{Key: key.Value, Value: val.Value})
	}
	*l = out
	return nil
}

// Props converts the list to htmlnode.Props.
func (l AttrList) Props() htmlnode.Props {
	return htmlnode.PropsOf(l...)
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the specified file. The file must exist.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.ConfigError("configuration file not found").
			WithContext("path", configPath).
			Build()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	return parse(data, configPath)
}

// LoadOrDefault behaves like Load but falls back to Default when the file does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Debug("No configuration file, using defaults", logfields.File(configPath))
		loadEnvFiles()
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, cfg.Validate()
	}
	return Load(configPath)
}

func parse(data []byte, configPath string) (*Config, error) {
	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
			WithContext("path", configPath).
			Fatal().
			Build()
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if cfg.Inline.Wrap == "" {
		cfg.Inline.Wrap = "p"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Output.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvWrap)); v != "" {
		cfg.Inline.Wrap = v
	}
}

// Validate checks the configuration after defaults have been applied.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.ConfigError("unsupported output format").
			WithContext("format", c.Output.Format).
			Build()
	}
	if strings.TrimSpace(c.Inline.Wrap) == "" {
		return errors.ConfigError("inline.wrap must not be blank").Build()
	}
	return nil
}
