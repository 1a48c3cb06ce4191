// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with documented defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "time"

// Config carries every tunable of the animation engine. Durations are
// expressed in milliseconds so they round-trip cleanly through YAML and env.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// GrowthDurationMS is the line growth phase length shared by all features.
	GrowthDurationMS int `koanf:"growth_duration_ms"`

	// RippleDurationMS is the destination pulse length shared by all features.
	RippleDurationMS int `koanf:"ripple_duration_ms"`

	// BaseLineDurationMS is the default per-route line duration in the timeline.
	BaseLineDurationMS int `koanf:"base_line_duration_ms"`

	// StaggerMS is the gap between one route's completion and the next start.
	StaggerMS int `koanf:"stagger_ms"`

	// MinZoom and MaxZoom clamp the computed camera zoom.
	MinZoom float64 `koanf:"min_zoom"`
	MaxZoom float64 `koanf:"max_zoom"`

	// PaddingPct is the fractional viewport padding per side when framing.
	PaddingPct float64 `koanf:"padding_pct"`

	// FlyToDurationMS is the default camera transition length.
	FlyToDurationMS int `koanf:"flyto_duration_ms"`

	// FrameRate is the tick rate of the self-driven playback loop.
	FrameRate int `koanf:"frame_rate"`

	// Speed is the initial playback rate multiplier.
	Speed float64 `koanf:"speed"`

	// Looping sets whether playback wraps at the timeline end.
	Looping bool `koanf:"looping"`
}

// New creates a Config with the documented defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		GrowthDurationMS:   2000,
		RippleDurationMS:   1500,
		BaseLineDurationMS: 1000,
		StaggerMS:          0,
		MinZoom:            0.5,
		MaxZoom:            10,
		PaddingPct:         0.1,
		FlyToDurationMS:    1000,
		FrameRate:          60,
		Speed:              1.0,
		Looping:            false,
	}
}

// Duration accessors.

func (c *Config) GrowthDuration() time.Duration {
	return time.Duration(c.GrowthDurationMS) * time.Millisecond
}

func (c *Config) RippleDuration() time.Duration {
	return time.Duration(c.RippleDurationMS) * time.Millisecond
}

func (c *Config) BaseLineDuration() time.Duration {
	return time.Duration(c.BaseLineDurationMS) * time.Millisecond
}

func (c *Config) Stagger() time.Duration {
	return time.Duration(c.StaggerMS) * time.Millisecond
}

func (c *Config) FlyToDuration() time.Duration {
	return time.Duration(c.FlyToDurationMS) * time.Millisecond
}
