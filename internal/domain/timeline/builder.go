// Package timeline converts an author's routes into an ordered, timestamped
// sequence of animation events.
package timeline

import (
	"context"
	"sort"
	"time"

	"github.com/mkarimian/geochron/internal/domain/model"
	"github.com/mkarimian/geochron/pkg/logger"
	"github.com/mkarimian/geochron/pkg/metrics"
)

// Default builder configuration constants.
const (
	defaultBaseLineDuration = 1000 * time.Millisecond
	defaultStagger          = 0
)

// Builder produces timeline events from routes. Building is pure: the same
// input always yields the same output, so rebuilds are idempotent.
type Builder struct {
	baseDuration time.Duration
	stagger      time.Duration
	policy       DurationPolicy
	logger       logger.Logger
}

// NewBuilder creates a Builder with configuration options applied over defaults.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		baseDuration: defaultBaseLineDuration,
		stagger:      defaultStagger,
		logger:       logger.Named("timeline"),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.policy == nil {
		b.policy = ConstantDuration(b.baseDuration)
	}
	return b
}

// Build walks the routes in chronological order and emits, per route, a
// LINE_START, a LINE_PROGRESS at the temporal midpoint, a LINE_COMPLETE, and
// a RIPPLE_TRIGGER alongside LINE_COMPLETE when the route has a collection.
// Routes are sorted by year with ties broken by input order, and successive
// routes are laid back-to-back (plus the configured stagger), so timestamps
// are non-decreasing in emission order.
func (b *Builder) Build(ctx context.Context, routes []model.Route, themeColor string) []model.TimelineEvent {
	started := time.Now()

	sorted := make([]model.Route, len(routes))
	copy(sorted, routes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year < sorted[j].Year
	})

	events := make([]model.TimelineEvent, 0, 4*len(sorted))
	var cursor time.Duration
	var prev *model.Route

	for i := range sorted {
		route := sorted[i]
		lineDuration := b.policy(route, prev)
		if lineDuration <= 0 {
			lineDuration = b.baseDuration
		}

		start := cursor
		complete := start + lineDuration

		events = append(events, model.TimelineEvent{
			Type:       model.EventLineStart,
			RouteID:    route.ID,
			Timestamp:  start,
			ThemeColor: themeColor,
		})
		events = append(events, model.TimelineEvent{
			Type:       model.EventLineProgress,
			RouteID:    route.ID,
			Timestamp:  start + lineDuration/2,
			ThemeColor: themeColor,
		})
		events = append(events, model.TimelineEvent{
			Type:       model.EventLineComplete,
			RouteID:    route.ID,
			Timestamp:  complete,
			ThemeColor: themeColor,
		})
		if route.CollectionInfo.HasCollection {
			events = append(events, model.TimelineEvent{
				Type:           model.EventRippleTrigger,
				RouteID:        route.ID,
				Timestamp:      complete,
				ThemeColor:     themeColor,
				HasCollection:  true,
				CollectionMeta: route.CollectionInfo.Meta,
			})
		}

		cursor = complete + b.stagger
		prev = &sorted[i]
	}

	metrics.RecordTimelineBuilt(len(events), time.Since(started))
	b.logger.Debug(ctx, "timeline built",
		logger.Int("routes", len(sorted)),
		logger.Int("events", len(events)),
	)

	return events
}

// End returns the timestamp of the last event, or zero for an empty timeline.
func End(events []model.TimelineEvent) time.Duration {
	if len(events) == 0 {
		return 0
	}
	return events[len(events)-1].Timestamp
}
