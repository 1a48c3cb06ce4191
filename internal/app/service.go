// Package service wires the engine together: it loads and caches author
// payloads, rebuilds timelines, registers animation features, and owns the
// active-view lifecycle including teardown on author switches.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkarimian/geochron/internal/adapters/source"
	"github.com/mkarimian/geochron/internal/config"
	"github.com/mkarimian/geochron/internal/domain/animation"
	"github.com/mkarimian/geochron/internal/domain/camera"
	"github.com/mkarimian/geochron/internal/domain/model"
	"github.com/mkarimian/geochron/internal/domain/playback"
	"github.com/mkarimian/geochron/internal/domain/timeline"
	"github.com/mkarimian/geochron/pkg/logger"
	"github.com/mkarimian/geochron/pkg/metrics"
)

// Default viewport dimensions, overridable per view.
const (
	defaultViewportWidth  = 800.0
	defaultViewportHeight = 600.0
)

// Service is the engine facade a host rendering surface embeds.
type Service struct {
	mu sync.RWMutex

	src      source.Source
	builder  *timeline.Builder
	anim     *animation.Controller
	camera   *camera.Controller
	playback *playback.Coordinator

	cfg            *config.Config
	viewportWidth  float64
	viewportHeight float64

	cache        map[string]*model.Author
	activeID     string
	active       *model.Author
	activeEvents []model.TimelineEvent

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig supplies the engine configuration used to build sub-components.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithViewport sets the map viewport dimensions.
func WithViewport(width, height float64) Option {
	return func(s *Service) {
		if width > 0 && height > 0 {
			s.viewportWidth = width
			s.viewportHeight = height
		}
	}
}

// WithTimelineBuilder injects a custom timeline builder.
func WithTimelineBuilder(b *timeline.Builder) Option {
	return func(s *Service) {
		if b != nil {
			s.builder = b
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service over the given payload source.
func New(src source.Source, opts ...Option) *Service {
	s := &Service{
		src:            src,
		cfg:            config.New(),
		viewportWidth:  defaultViewportWidth,
		viewportHeight: defaultViewportHeight,
		cache:          make(map[string]*model.Author),
		logger:         logger.Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.builder == nil {
		s.builder = timeline.NewBuilder(
			timeline.WithBaseLineDuration(s.cfg.BaseLineDuration()),
			timeline.WithStagger(s.cfg.Stagger()),
		)
	}
	s.anim = animation.NewController(
		animation.WithGrowthDuration(s.cfg.GrowthDuration()),
		animation.WithRippleDuration(s.cfg.RippleDuration()),
	)
	s.camera = camera.NewController(s.viewportWidth, s.viewportHeight,
		camera.WithZoomRange(s.cfg.MinZoom, s.cfg.MaxZoom),
		camera.WithPadding(s.cfg.PaddingPct),
		camera.WithFlyToDuration(s.cfg.FlyToDuration()),
	)
	s.playback = playback.NewCoordinator(s.anim,
		playback.WithSpeed(s.cfg.Speed),
		playback.WithLooping(s.cfg.Looping),
		playback.WithFrameRate(s.cfg.FrameRate),
		playback.WithStepper(s.camera.Step),
	)

	return s
}

// Animation exposes the per-feature state queries for the renderer.
func (s *Service) Animation() *animation.Controller { return s.anim }

// Camera exposes the camera state and transitions.
func (s *Service) Camera() *camera.Controller { return s.camera }

// Playback exposes the playback controls.
func (s *Service) Playback() *playback.Coordinator { return s.playback }

// LoadAuthor returns the normalized payload for id, serving repeats from the
// cache. Malformed routes are dropped during normalization; only a payload
// that cannot be fetched at all fails the load.
func (s *Service) LoadAuthor(ctx context.Context, id string) (*model.Author, error) {
	s.mu.RLock()
	cached, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		metrics.RecordAuthorCacheHit()
		return cached, nil
	}

	payload, err := s.src.FetchAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthorLoad, err)
	}

	author := s.normalizeAuthor(ctx, payload)

	s.mu.Lock()
	s.cache[id] = author
	s.mu.Unlock()

	metrics.RecordAuthorLoaded()
	s.logger.Info(ctx, "author loaded",
		logger.String("author_id", id),
		logger.Int("routes", len(author.Routes())),
	)
	return author, nil
}

// SetActiveAuthor switches the view to the given author: tears down the
// previous one, rebuilds the timeline, registers features, and frames the
// camera on the author's geography.
func (s *Service) SetActiveAuthor(ctx context.Context, id string) error {
	s.teardownActive(ctx)

	author, err := s.LoadAuthor(ctx, id)
	if err != nil {
		return err
	}

	routes := author.Routes()
	events := s.builder.Build(ctx, routes, author.ThemeColor)

	spans := make(map[string]struct {
		start    time.Duration
		complete time.Duration
	}, len(routes))
	for _, e := range events {
		entry := spans[e.RouteID]
		switch e.Type {
		case model.EventLineStart:
			entry.start = e.Timestamp
		case model.EventLineComplete:
			entry.complete = e.Timestamp
		case model.EventLineProgress, model.EventRippleTrigger:
		}
		spans[e.RouteID] = entry
	}
	for _, r := range routes {
		entry := spans[r.ID]
		s.anim.RegisterFeature(ctx, r.ID, entry.start, entry.complete-entry.start)
	}

	s.playback.SetDuration(s.anim.End())
	s.playback.Seek(ctx, 0)

	if coords := author.Coordinates(); len(coords) > 0 {
		bbox, bboxErr := s.camera.AuthorBBox(coords)
		if bboxErr == nil {
			params := s.camera.SmartFlyTo(bbox, s.cfg.PaddingPct, s.cfg.FlyToDuration())
			s.camera.FlyTo(ctx, params, nil)
		}
	}

	s.mu.Lock()
	s.activeID = id
	s.active = author
	s.activeEvents = events
	s.mu.Unlock()

	s.logger.Info(ctx, "active author set",
		logger.String("author_id", id),
		logger.Int("events", len(events)),
	)
	return nil
}

// ActiveAuthor returns the currently active author, or nil.
func (s *Service) ActiveAuthor() *model.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// ActiveTimeline returns a copy of the active author's event list.
func (s *Service) ActiveTimeline() []model.TimelineEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.TimelineEvent, len(s.activeEvents))
	copy(out, s.activeEvents)
	return out
}

// RemoveAuthor evicts one author from the cache, tearing down the view first
// when it is the active one.
func (s *Service) RemoveAuthor(ctx context.Context, id string) {
	s.mu.RLock()
	isActive := s.activeID == id
	s.mu.RUnlock()

	if isActive {
		s.teardownActive(ctx)
	}

	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}

// ClearCache evicts every cached author.
func (s *Service) ClearCache(ctx context.Context) {
	s.teardownActive(ctx)

	s.mu.Lock()
	s.cache = make(map[string]*model.Author)
	s.mu.Unlock()

	s.logger.Debug(ctx, "author cache cleared")
}

// Close disposes the view: the frame loop stops, the feature registry is
// dropped, and any in-flight camera transition resolves. Must run before the
// host discards the renderer.
func (s *Service) Close(ctx context.Context) {
	s.teardownActive(ctx)
	s.playback.Stop()
}

func (s *Service) teardownActive(ctx context.Context) {
	s.playback.Pause(ctx)
	s.anim.Reset(ctx)
	s.camera.CancelFlight(ctx)
	s.playback.SetDuration(0)
	s.playback.Seek(ctx, 0)

	s.mu.Lock()
	s.activeID = ""
	s.active = nil
	s.activeEvents = nil
	s.mu.Unlock()
}
