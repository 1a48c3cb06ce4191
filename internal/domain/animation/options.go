package animation

import (
	"time"

	"github.com/mkarimian/geochron/pkg/logger"
)

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithGrowthDuration sets the line growth phase length shared by all features.
func WithGrowthDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.growthDuration = d
		}
	}
}

// WithRippleDuration sets the destination pulse length shared by all features.
func WithRippleDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.rippleDuration = d
		}
	}
}

// WithLogger sets a custom logger for the controller.
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}
