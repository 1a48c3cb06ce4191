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

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if GEOCHRON_CONFIG is set
//  3. env (prefix GEOCHRON_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("GEOCHRON_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: GEOCHRON_MIN_ZOOM, GEOCHRON_FRAME_RATE, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("GEOCHRON_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "geochron_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants between knobs.
func (c *Config) Validate() error {
	if c.GrowthDurationMS <= 0 || c.RippleDurationMS <= 0 || c.BaseLineDurationMS <= 0 {
		return fmt.Errorf("%w: animation durations must be positive", ErrInvalidConfig)
	}
	if c.StaggerMS < 0 {
		return fmt.Errorf("%w: stagger must not be negative", ErrInvalidConfig)
	}
	if c.MinZoom <= 0 || c.MaxZoom <= c.MinZoom {
		return fmt.Errorf("%w: zoom range [%v, %v] is invalid", ErrInvalidConfig, c.MinZoom, c.MaxZoom)
	}
	if c.PaddingPct < 0 || c.PaddingPct >= 0.5 {
		return fmt.Errorf("%w: padding_pct %v must be in [0, 0.5)", ErrInvalidConfig, c.PaddingPct)
	}
	if c.FlyToDurationMS <= 0 {
		return fmt.Errorf("%w: flyto_duration_ms must be positive", ErrInvalidConfig)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive", ErrInvalidConfig)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive", ErrInvalidConfig)
	}
	return nil
}
