package camera

import (
	"time"

	"github.com/mkarimian/geochron/pkg/logger"
)

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithZoomRange sets the zoom clamp bounds.
func WithZoomRange(minZoom, maxZoom float64) Option {
	return func(c *Controller) {
		if minZoom > 0 && maxZoom > minZoom {
			c.minZoom = minZoom
			c.maxZoom = maxZoom
		}
	}
}

// WithPadding sets the default fractional viewport padding per side.
func WithPadding(fraction float64) Option {
	return func(c *Controller) {
		if fraction >= 0 && fraction < 0.5 {
			c.paddingPct = fraction
		}
	}
}

// WithBaseScale sets the pixels-per-degree to zoom-unit conversion constant.
func WithBaseScale(scale float64) Option {
	return func(c *Controller) {
		if scale > 0 {
			c.baseScale = scale
		}
	}
}

// WithFlyToDuration sets the default transition length.
func WithFlyToDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.flyToDuration = d
		}
	}
}

// WithEasing sets the default easing curve.
func WithEasing(e Easing) Option {
	return func(c *Controller) {
		if e != nil {
			c.easing = e
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
