package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if NIRMAAN_CONFIG is set
//  3. env (prefix NIRMAAN_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("NIRMAAN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: NIRMAAN_ADDR, NIRMAAN_RUBRIC_PATH, ...
	// Map env keys like NIRMAAN_EMBED_TIMEOUT_MS -> embed_timeout_ms.
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("NIRMAAN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "nirmaan_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.EmbedTimeoutMS <= 0 {
		return nil, fmt.Errorf("%w: embed_timeout_ms must be positive", ErrInvalidConfig)
	}
	if cfg.EmbedDimension <= 0 {
		return nil, fmt.Errorf("%w: embed_dimension must be positive", ErrInvalidConfig)
	}
	if cfg.NeutralSemanticScore < 0 || cfg.NeutralSemanticScore > 1 {
		return nil, fmt.Errorf("%w: neutral_semantic_score must be in [0,1]", ErrInvalidConfig)
	}
	if cfg.ScorePrecision < 0 {
		return nil, fmt.Errorf("%w: score_precision must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
