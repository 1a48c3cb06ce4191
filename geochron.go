// Package geochron animates an author's geographic biography: dated journeys
// between cities become a deterministic, replayable visual timeline of
// growing lines and destination ripples, with a camera that frames the
// active region. The package is an embedded engine: a host rendering surface
// pulls per-feature animation state every frame and draws it; nothing here
// touches pixels.
package geochron

import (
	"context"

	"github.com/mkarimian/geochron/internal/adapters/source"
	service "github.com/mkarimian/geochron/internal/app"
	"github.com/mkarimian/geochron/internal/config"
	"github.com/mkarimian/geochron/internal/domain/animation"
	"github.com/mkarimian/geochron/internal/domain/camera"
	"github.com/mkarimian/geochron/internal/domain/geo"
	"github.com/mkarimian/geochron/internal/domain/model"
	"github.com/mkarimian/geochron/internal/domain/timeline"
)

// Geographic value types.
type (
	Coordinate  = geo.Coordinate
	BoundingBox = geo.BoundingBox
)

// Payload types consumed from the host's data source.
type (
	Author         = model.Author
	Work           = model.Work
	Route          = model.Route
	Location       = model.Location
	CollectionInfo = model.CollectionInfo
	CollectionMeta = model.CollectionMeta
)

// Timeline types produced for the renderer.
type (
	TimelineEvent = model.TimelineEvent
	EventType     = model.EventType
)

// Timeline event kinds.
const (
	EventLineStart     = model.EventLineStart
	EventLineProgress  = model.EventLineProgress
	EventLineComplete  = model.EventLineComplete
	EventRippleTrigger = model.EventRippleTrigger
)

// Per-feature animation states.
type FeatureState = animation.State

const (
	StateHidden   = animation.StateHidden
	StateGrowing  = animation.StateGrowing
	StateRippling = animation.StateRippling
	StateActive   = animation.StateActive
)

// Camera types.
type (
	CameraState = camera.State
	FlyToParams = camera.FlyToParams
	Flight      = camera.Flight
)

// Engine is the facade a host embeds: orchestration, timeline building,
// animation, camera, and playback behind one handle.
type Engine = service.Service

// Source supplies author payloads by id; hosts implement it over whatever
// transport they have, or seed a static one.
type Source = source.Source

// Config carries every engine tunable with documented defaults.
type Config = config.Config

// Engine construction options.
type Option = service.Option

var (
	WithConfig   = service.WithConfig
	WithViewport = service.WithViewport
	WithLogger   = service.WithLogger
)

// Timeline duration policies, for WithTimelineBuilder.
var (
	NewTimelineBuilder = timeline.NewBuilder
	ConstantDuration   = timeline.ConstantDuration
	DistanceScaled     = timeline.DistanceScaled
	YearGapScaled      = timeline.YearGapScaled
)

// WithTimelineBuilder injects a custom timeline builder.
var WithTimelineBuilder = service.WithTimelineBuilder

// New creates an Engine over the given payload source.
func New(src Source, opts ...Option) *Engine {
	return service.New(src, opts...)
}

// NewStaticSource creates an in-memory Source seeded with author payloads.
func NewStaticSource(authors ...Author) *source.Static {
	return source.NewStatic(authors...)
}

// DefaultConfig returns the documented engine defaults.
func DefaultConfig() *Config {
	return config.New()
}

// LoadConfig layers defaults, an optional GEOCHRON_CONFIG YAML file, and
// GEOCHRON_* env vars into a validated Config.
func LoadConfig(ctx context.Context) (*Config, error) {
	return config.Load(ctx)
}
