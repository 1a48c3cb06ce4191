package timeline

import (
	"time"

	"github.com/mkarimian/geochron/pkg/logger"
)

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithBaseLineDuration sets the default per-route line growth duration.
func WithBaseLineDuration(d time.Duration) Option {
	return func(b *Builder) {
		if d > 0 {
			b.baseDuration = d
		}
	}
}

// WithStagger sets the gap inserted between one route's completion and the
// next route's start.
func WithStagger(d time.Duration) Option {
	return func(b *Builder) {
		if d >= 0 {
			b.stagger = d
		}
	}
}

// WithDurationPolicy sets the per-route duration policy.
func WithDurationPolicy(p DurationPolicy) Option {
	return func(b *Builder) {
		if p != nil {
			b.policy = p
		}
	}
}

// WithLogger sets a custom logger for the builder.
func WithLogger(l logger.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}
