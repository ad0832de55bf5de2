package renderctx

import (
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultMaxConfigSize bounds the config documents LoadConfig accepts.
const DefaultMaxConfigSize = 64 * 1024

// Config describes a Middleware setup in YAML:
//
//	default_preset: xhtml-1.0-strict
//	strict_content_type: false
//	max_body_size: 1048576
//	formats:
//	  json: {language: json}
//	  xml: {language: xml, version: 1.0}
type Config struct {
	DefaultPreset     string             `yaml:"default_preset" json:"default_preset"`
	StrictContentType bool               `yaml:"strict_content_type" json:"strict_content_type"`
	MaxBodySize       int64              `yaml:"max_body_size" json:"max_body_size"`
	Formats           map[Format]Profile `yaml:"formats,omitempty" json:"formats,omitempty"`
}

// DefaultConfig returns the configuration NewMiddleware uses without options.
func DefaultConfig() *Config {
	defaults := defaultMiddlewareConfig()
	return &Config{
		DefaultPreset:     defaults.defaultPreset,
		StrictContentType: defaults.strict,
		MaxBodySize:       defaults.maxBodySize,
		Formats:           defaults.formatProfiles,
	}
}

// LoadConfig reads and validates a YAML config. Missing fields keep their
// defaults; formats listed in the document replace only their own entry.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(io.LimitReader(r, DefaultMaxConfigSize+1))
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigReadFailed, err)
	}
	if len(data) > DefaultMaxConfigSize {
		return nil, NewConfigError(ErrMsgConfigTooLarge, nil)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParseFailed, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads and validates a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigReadFailed, err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks the default preset, the format names and every format
// profile against the doctype table.
func (c *Config) Validate() error {
	p, err := ParsePreset(c.DefaultPreset)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	for _, format := range c.formatNames() {
		if _, ok := ParseFormat(string(format)); !ok {
			return NewUnknownFormatError(string(format))
		}
		if err := c.Formats[format].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the config into middleware options.
func (c *Config) Options() []Option {
	opts := []Option{
		WithDefaultPreset(c.DefaultPreset),
		WithStrictContentType(c.StrictContentType),
		WithMaxBodySize(c.MaxBodySize),
	}
	for _, format := range c.formatNames() {
		opts = append(opts, WithFormatProfile(format, c.Formats[format]))
	}
	return opts
}

// YAML returns the YAML representation of the config.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatNames returns the configured formats in a stable order.
func (c *Config) formatNames() []Format {
	names := make([]Format, 0, len(c.Formats))
	for format := range c.Formats {
		names = append(names, format)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
