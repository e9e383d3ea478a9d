// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Loading layers defaults, an optional YAML file, and environment vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RubricPath points at a rubric YAML file. Empty means the built-in
	// default rubric.
	RubricPath string `koanf:"rubric_path"`

	// EmbedServiceURL is the base URL of an external embedding service.
	// Empty means the local deterministic embedder.
	EmbedServiceURL string `koanf:"embed_service_url"`

	// EmbedTimeoutMS bounds a single embedding call in milliseconds.
	EmbedTimeoutMS int `koanf:"embed_timeout_ms"`

	// EmbedDimension sets the vector size of the local embedder.
	EmbedDimension int `koanf:"embed_dimension"`

	// NeutralSemanticScore substitutes for semantic criteria when the
	// embedding capability is unavailable.
	NeutralSemanticScore float64 `koanf:"neutral_semantic_score"`

	// ScorePrecision is the number of decimal places of the overall score.
	ScorePrecision int `koanf:"score_precision"`

	// MaxTranscriptBytes caps the accepted transcript payload size.
	MaxTranscriptBytes int `koanf:"max_transcript_bytes"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		RubricPath:           "",
		EmbedServiceURL:      "",
		EmbedTimeoutMS:       2_000,
		EmbedDimension:       256,
		NeutralSemanticScore: 0.5,
		ScorePrecision:       0,
		MaxTranscriptBytes:   1 << 20,
	}
	return c
}
