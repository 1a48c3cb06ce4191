package playback

import (
	"github.com/mkarimian/geochron/pkg/logger"
)

// Option applies a configuration option to the Coordinator.
type Option func(*Coordinator)

// WithSpeed sets the initial playback rate multiplier.
func WithSpeed(multiplier float64) Option {
	return func(c *Coordinator) {
		if multiplier > 0 {
			c.speed = multiplier
		}
	}
}

// WithLooping sets the initial loop mode.
func WithLooping(looping bool) Option {
	return func(c *Coordinator) {
		c.looping = looping
	}
}

// WithFrameRate sets the tick rate of the self-driven Run loop.
func WithFrameRate(fps int) Option {
	return func(c *Coordinator) {
		if fps > 0 {
			c.frameRate = fps
		}
	}
}

// WithStepper registers a per-frame callback receiving the unscaled wall
// delta, e.g. the camera controller's Step.
func WithStepper(step StepFunc) Option {
	return func(c *Coordinator) {
		if step != nil {
			c.steppers = append(c.steppers, step)
		}
	}
}

// WithLogger sets a custom logger for the coordinator.
func WithLogger(l logger.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}
