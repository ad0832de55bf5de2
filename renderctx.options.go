package renderctx

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Middleware.
type Option func(*middlewareConfig)

// middlewareConfig holds the internal configuration for a Middleware.
type middlewareConfig struct {
	defaultPreset  string
	strict         bool
	maxBodySize    int64
	formatProfiles map[Format]Profile
	metrics        *Metrics
	logger         *zap.Logger
}

// defaultMiddlewareConfig returns the default middleware configuration.
func defaultMiddlewareConfig() *middlewareConfig {
	return &middlewareConfig{
		defaultPreset: DefaultMiddlewarePreset,
		strict:        DefaultStrictContentType,
		maxBodySize:   DefaultMaxBodySize,
		formatProfiles: map[Format]Profile{
			FormatJSON: {Language: LanguageJSON},
			FormatXML:  {Language: LanguageXML, Version: DefaultXMLVersion},
		},
		metrics: nil,
		logger:  nil,
	}
}

// WithDefaultPreset sets the preset used when no response format is negotiated.
// Default: "html-5"
func WithDefaultPreset(preset string) Option {
	return func(c *middlewareConfig) {
		if preset != "" {
			c.defaultPreset = preset
		}
	}
}

// WithStrictContentType always serves XHTML as application/xhtml+xml.
// When unset, XHTML is only served with its own MIME type to clients whose
// Accept header lists it.
// Default: false
func WithStrictContentType(strict bool) Option {
	return func(c *middlewareConfig) {
		c.strict = strict
	}
}

// WithMaxBodySize caps the request body read before the handler runs.
// Larger bodies are answered with 413. A non-positive size removes the cap.
// Default: 1 MiB
func WithMaxBodySize(size int64) Option {
	return func(c *middlewareConfig) {
		c.maxBodySize = size
	}
}

// WithFormatProfile sets the profile used for responses negotiated to format.
// Defaults: json -> json, xml -> xml 1.0
func WithFormatProfile(format Format, p Profile) Option {
	return func(c *middlewareConfig) {
		c.formatProfiles[format] = p
	}
}

// WithMetrics records negotiation outcomes on m.
// Default: nil (no metrics)
func WithMetrics(m *Metrics) Option {
	return func(c *middlewareConfig) {
		c.metrics = m
	}
}

// WithLogger sets the logger for the middleware and the per-request stacks.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *middlewareConfig) {
		c.logger = logger
	}
}
