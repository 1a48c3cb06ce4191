// Package playback owns the authoritative clock: play/pause/seek/speed over
// an author's timeline, pushing absolute time into the animation controller.
package playback

import (
	"context"
	"sync"
	"time"

	"github.com/mkarimian/geochron/internal/domain/animation"
	"github.com/mkarimian/geochron/pkg/logger"
	"github.com/mkarimian/geochron/pkg/metrics"
)

// Default coordinator configuration constants.
const (
	defaultSpeed     = 1.0
	defaultFrameRate = 60
)

// StepFunc is invoked every frame with the unscaled wall-clock delta, for
// collaborators that animate in wall time (camera flights).
type StepFunc func(dt time.Duration)

// Coordinator is the single source of "now" for one view. The clock only
// moves through its API; speed scales how fast the clock advances, never the
// meaning of any timestamp.
type Coordinator struct {
	mu sync.Mutex

	anim     *animation.Controller
	steppers []StepFunc

	position time.Duration
	duration time.Duration
	speed    float64
	looping  bool
	playing  bool

	frameRate int
	stopCh    chan struct{}
	stopOnce  sync.Once

	logger logger.Logger
}

// NewCoordinator creates a Coordinator driving the given animation controller.
func NewCoordinator(anim *animation.Controller, opts ...Option) *Coordinator {
	c := &Coordinator{
		anim:      anim,
		speed:     defaultSpeed,
		frameRate: defaultFrameRate,
		stopCh:    make(chan struct{}),
		logger:    logger.Named("playback"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDuration sets the playable timeline length.
func (c *Coordinator) SetDuration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d >= 0 {
		c.duration = d
	}
}

// Duration returns the playable timeline length.
func (c *Coordinator) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// Play starts the clock. Playing from the parked end position restarts from
// the origin.
func (c *Coordinator) Play(ctx context.Context) {
	c.mu.Lock()
	if c.duration > 0 && c.position >= c.duration {
		c.position = 0
		c.anim.SetTime(0)
	}
	c.playing = true
	c.mu.Unlock()

	c.logger.Debug(ctx, "playback started")
}

// Pause stops the clock without moving it.
func (c *Coordinator) Pause(ctx context.Context) {
	c.mu.Lock()
	c.playing = false
	c.mu.Unlock()

	c.logger.Debug(ctx, "playback paused")
}

// IsPlaying reports whether the clock is advancing.
func (c *Coordinator) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Seek moves the clock to an absolute position and pushes that absolute time
// into the animation controller, so seeking backward is exactly as correct as
// seeking forward.
func (c *Coordinator) Seek(ctx context.Context, position time.Duration) {
	c.mu.Lock()
	if position < 0 {
		position = 0
	}
	if c.duration > 0 && position > c.duration {
		position = c.duration
	}
	c.position = position
	c.anim.SetTime(position)
	c.mu.Unlock()

	metrics.RecordSeek()
	c.logger.Debug(ctx, "seek", logger.Duration("position", position))
}

// SeekFraction seeks to a 0..1 fraction of the timeline length.
func (c *Coordinator) SeekFraction(ctx context.Context, fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	c.mu.Lock()
	target := time.Duration(float64(c.duration) * fraction)
	c.mu.Unlock()
	c.Seek(ctx, target)
}

// Position returns the current clock position.
func (c *Coordinator) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Fraction returns the current position as a 0..1 fraction of the timeline.
func (c *Coordinator) Fraction() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.duration <= 0 {
		return 0
	}
	return float64(c.position) / float64(c.duration)
}

// SetSpeed sets the playback rate multiplier.
func (c *Coordinator) SetSpeed(multiplier float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if multiplier > 0 {
		c.speed = multiplier
	}
}

// Speed returns the playback rate multiplier.
func (c *Coordinator) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// SetLoop toggles wrap-around at the timeline end.
func (c *Coordinator) SetLoop(looping bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.looping = looping
}

// Looping reports whether playback wraps at the timeline end.
func (c *Coordinator) Looping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.looping
}

// Advance moves the clock by one frame's worth of wall time. Steppers run on
// every frame regardless of play state; the clock itself only moves while
// playing, by the speed-scaled delta. On reaching the end a looping clock
// resets to the origin and keeps playing, a non-looping one parks at the end.
func (c *Coordinator) Advance(ctx context.Context, wallDelta time.Duration) {
	c.mu.Lock()
	steppers := c.steppers
	c.mu.Unlock()
	for _, step := range steppers {
		step(wallDelta)
	}

	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}

	c.position += time.Duration(float64(wallDelta) * c.speed)
	ended := false
	if c.duration > 0 && c.position >= c.duration {
		if c.looping {
			c.position = 0
		} else {
			c.position = c.duration
			c.playing = false
			ended = true
		}
	}
	c.anim.SetTime(c.position)
	c.mu.Unlock()

	if ended {
		c.logger.Debug(ctx, "playback reached end")
	}
}

// Run drives Advance from a wall-clock ticker at the configured frame rate
// until ctx is done or Stop is called. It blocks; callers run it on its own
// goroutine when self-driven playback is wanted instead of host-driven
// Advance calls.
func (c *Coordinator) Run(ctx context.Context) {
	interval := time.Second / time.Duration(c.frameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		case now := <-ticker.C:
			c.Advance(ctx, now.Sub(last))
			last = now
		}
	}
}

// Stop terminates a running frame loop. Safe to call more than once.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}
