// Package camera computes viewport framing from geometry and runs eased
// transitions between camera states. One Controller owns the shared camera
// state for a map view; everything else only reads it.
package camera

import (
	"math"
	"sync"
	"time"

	"github.com/mkarimian/geochron/internal/domain/geo"
	"github.com/mkarimian/geochron/pkg/logger"
)

// Default camera configuration constants.
const (
	defaultMinZoom       = 0.5
	defaultMaxZoom       = 10.0
	defaultPaddingPct    = 0.1
	defaultFlyToDuration = 1000 * time.Millisecond

	// baseScale converts pixels-per-degree into the renderer's zoom unit.
	defaultBaseScale = 4.0
)

// State is the shared camera state for one map view.
type State struct {
	Center         geo.Coordinate
	Zoom           float64
	Rotation       [3]float64 // lambda, phi, gamma
	ViewportWidth  float64
	ViewportHeight float64
	Padding        float64
}

// FlyToParams is a target framing plus the transition shape to reach it.
type FlyToParams struct {
	Center   geo.Coordinate
	Zoom     float64
	Rotation [3]float64
	Duration time.Duration
	Easing   Easing
}

// Controller owns the camera state and the at-most-one in-flight transition.
type Controller struct {
	mu sync.Mutex

	paddingPct    float64
	minZoom       float64
	maxZoom       float64
	baseScale     float64
	flyToDuration time.Duration
	easing        Easing

	state  State
	flight *Flight

	logger logger.Logger
}

// NewController creates a camera controller for the given viewport size with
// configuration options applied over defaults.
func NewController(viewportWidth, viewportHeight float64, opts ...Option) *Controller {
	c := &Controller{
		paddingPct:    defaultPaddingPct,
		minZoom:       defaultMinZoom,
		maxZoom:       defaultMaxZoom,
		baseScale:     defaultBaseScale,
		flyToDuration: defaultFlyToDuration,
		easing:        EaseInOutCubic,
		logger:        logger.Named("camera"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = State{
		Zoom:           1,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		Padding:        c.paddingPct,
	}
	return c
}

// State returns a copy of the current camera state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetViewport updates the viewport dimensions, e.g. after a host resize.
func (c *Controller) SetViewport(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ViewportWidth = width
	c.state.ViewportHeight = height
}

// AuthorBBox computes the padded bounding box of the given coordinates.
// A single-point set is widened to a minimum span before padding.
func (c *Controller) AuthorBBox(coords []geo.Coordinate) (geo.BoundingBox, error) {
	bbox, err := geo.BBoxFromCoordinates(coords)
	if err != nil {
		return geo.BoundingBox{}, err
	}
	return bbox.Pad(c.paddingPct), nil
}

// SmartFlyTo derives the framing that fits bbox in the viewport with the
// given fractional padding on each side. The zoom always takes the smaller
// of the two axis scale ratios so neither axis is ever cropped.
func (c *Controller) SmartFlyTo(bbox geo.BoundingBox, paddingPct float64, duration time.Duration) FlyToParams {
	if bbox.Validate() != nil {
		bbox = bbox.EnsureMinSpan()
	}
	if paddingPct < 0 || paddingPct >= 0.5 {
		paddingPct = c.paddingPct
	}
	if duration <= 0 {
		duration = c.flyToDuration
	}

	c.mu.Lock()
	viewportW := c.state.ViewportWidth
	viewportH := c.state.ViewportHeight
	c.mu.Unlock()

	availWidth := viewportW * (1 - 2*paddingPct)
	availHeight := viewportH * (1 - 2*paddingPct)

	scaleX := availWidth / bbox.Width()
	scaleY := availHeight / bbox.Height()
	zoom := math.Min(scaleX, scaleY) / c.baseScale
	if zoom < c.minZoom {
		zoom = c.minZoom
	}
	if zoom > c.maxZoom {
		zoom = c.maxZoom
	}

	center := bbox.Center()
	return FlyToParams{
		Center:   center,
		Zoom:     zoom,
		Rotation: [3]float64{-center.Lng, -center.Lat, 0},
		Duration: duration,
		Easing:   c.easing,
	}
}
