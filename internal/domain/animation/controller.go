// Package animation drives per-feature animation state as a pure function of
// a shared clock. Nothing here accumulates across frames: every query is
// recomputed from (clock, startTime), which is what makes arbitrary seeking
// deterministic.
package animation

import (
	"context"
	"sync"
	"time"

	"github.com/mkarimian/geochron/pkg/logger"
	"github.com/mkarimian/geochron/pkg/metrics"
)

// Default controller configuration constants.
const (
	defaultGrowthDuration = 2000 * time.Millisecond
	defaultRippleDuration = 1500 * time.Millisecond
)

// FeatureMeta is the registered metadata and computed state of one feature.
type FeatureMeta struct {
	StartTime time.Duration
	Duration  time.Duration
	State     State
	Progress  float64
}

type registration struct {
	startTime time.Duration
	duration  time.Duration
}

// Controller owns the animation clock and the feature registry. Growth and
// ripple durations are controller-level so all features share timing
// granularity.
type Controller struct {
	mu sync.RWMutex

	growthDuration time.Duration
	rippleDuration time.Duration

	clock    time.Duration
	features map[string]registration

	logger logger.Logger
}

// NewController creates a Controller with configuration options applied over
// defaults.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		growthDuration: defaultGrowthDuration,
		rippleDuration: defaultRippleDuration,
		features:       make(map[string]registration),
		logger:         logger.Named("animation"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterFeature stores per-feature timing keyed by feature identity.
// Registering an already-known id is last-write-wins and logged as a warning.
func (c *Controller) RegisterFeature(ctx context.Context, id string, startTime, duration time.Duration) {
	c.mu.Lock()
	_, dup := c.features[id]
	c.features[id] = registration{startTime: startTime, duration: duration}
	count := len(c.features)
	c.mu.Unlock()

	if dup {
		metrics.RecordDuplicateRegistration()
		c.logger.Warn(ctx, "duplicate feature registration, replacing", logger.String("feature_id", id))
	}
	metrics.RecordFeatureRegistered()
	metrics.UpdateRegisteredFeatures(count)
}

// DeregisterFeature removes one feature from the registry.
func (c *Controller) DeregisterFeature(ctx context.Context, id string) {
	c.mu.Lock()
	delete(c.features, id)
	count := len(c.features)
	c.mu.Unlock()

	metrics.UpdateRegisteredFeatures(count)
}

// Reset drops every registered feature and rewinds the clock. Used on author
// switch and teardown.
func (c *Controller) Reset(ctx context.Context) {
	c.mu.Lock()
	dropped := len(c.features)
	c.features = make(map[string]registration)
	c.clock = 0
	c.mu.Unlock()

	metrics.UpdateRegisteredFeatures(0)
	c.logger.Debug(ctx, "animation registry reset", logger.Int("dropped", dropped))
}

// SetTime moves the clock to the absolute time t. It is the only clock
// mutation entrypoint and is idempotent: two calls with the same t leave
// every feature in identical state.
func (c *Controller) SetTime(t time.Duration) {
	c.mu.Lock()
	c.clock = t
	c.mu.Unlock()

	metrics.UpdateClockPosition(t)
}

// Time returns the current clock position.
func (c *Controller) Time() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clock
}

// FeatureCount returns the number of registered features.
func (c *Controller) FeatureCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.features)
}

// StateOf returns the feature's discrete state at the current clock. Querying
// an unregistered feature returns StateHidden; during teardown the renderer
// may race feature removal and that must not be an error.
func (c *Controller) StateOf(id string) State {
	state, _ := c.stateAndProgress(id)
	return state
}

// ProgressOf returns the feature's continuous 0..1 progress within its
// current phase. Unregistered features report 0.
func (c *Controller) ProgressOf(id string) float64 {
	_, progress := c.stateAndProgress(id)
	return progress
}

// Snapshot returns computed metadata for every registered feature under one
// lock acquisition, for renderers that batch their per-frame reads.
func (c *Controller) Snapshot() map[string]FeatureMeta {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]FeatureMeta, len(c.features))
	for id, reg := range c.features {
		state, progress := c.evaluate(reg, c.clock)
		out[id] = FeatureMeta{
			StartTime: reg.startTime,
			Duration:  reg.duration,
			State:     state,
			Progress:  progress,
		}
	}
	return out
}

// End returns the time at which the last feature finishes rippling, i.e. the
// playable length of the registered set.
func (c *Controller) End() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var end time.Duration
	for _, reg := range c.features {
		if t := reg.startTime + c.growthDuration + c.rippleDuration; t > end {
			end = t
		}
	}
	return end
}

func (c *Controller) stateAndProgress(id string) (State, float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	reg, ok := c.features[id]
	if !ok {
		return StateHidden, 0
	}
	return c.evaluate(reg, c.clock)
}

// evaluate is the time-driven state machine. Callers hold at least a read lock.
func (c *Controller) evaluate(reg registration, clock time.Duration) (State, float64) {
	elapsed := clock - reg.startTime
	switch {
	case elapsed < 0:
		return StateHidden, 0
	case elapsed < c.growthDuration:
		return StateGrowing, float64(elapsed) / float64(c.growthDuration)
	case elapsed < c.growthDuration+c.rippleDuration:
		return StateRippling, float64(elapsed-c.growthDuration) / float64(c.rippleDuration)
	default:
		return StateActive, 1
	}
}
