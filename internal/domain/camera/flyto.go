package camera

import (
	"context"
	"time"

	"github.com/mkarimian/geochron/internal/domain/geo"
	"github.com/mkarimian/geochron/pkg/logger"
	"github.com/mkarimian/geochron/pkg/metrics"
)

// UpdateFunc receives the intermediate camera state on every animation tick.
type UpdateFunc func(State)

// Flight is a handle to one in-flight camera transition. Its Done channel
// always closes, whether the flight completed or was replaced by a newer one.
type Flight struct {
	from     State
	params   FlyToParams
	elapsed  time.Duration
	onUpdate UpdateFunc

	done chan struct{}
	// superseded is written exactly once before done is closed; the channel
	// close orders the write for readers.
	superseded bool
}

// Done is closed when the flight finishes or is superseded.
func (f *Flight) Done() <-chan struct{} { return f.done }

// Superseded reports whether the flight was replaced before completing.
// Valid after Done is closed.
func (f *Flight) Superseded() bool { return f.superseded }

// FlyTo begins an eased transition to the target framing. A flight started
// while another is in progress replaces it: the old flight's Done closes
// immediately with Superseded true, and only the new target is pursued.
func (c *Controller) FlyTo(ctx context.Context, params FlyToParams, onUpdate UpdateFunc) *Flight {
	if params.Duration <= 0 {
		params.Duration = c.flyToDuration
	}
	if params.Easing == nil {
		params.Easing = c.easing
	}

	c.mu.Lock()
	prev := c.flight
	flight := &Flight{
		from:     c.state,
		params:   params,
		onUpdate: onUpdate,
		done:     make(chan struct{}),
	}
	c.flight = flight
	c.mu.Unlock()

	if prev != nil {
		prev.superseded = true
		close(prev.done)
		metrics.RecordFlyToSuperseded()
		c.logger.Debug(ctx, "fly-to superseded")
	}
	metrics.RecordFlyToStarted()
	c.logger.Debug(ctx, "fly-to started",
		logger.Float64("zoom", params.Zoom),
		logger.Duration("duration", params.Duration),
	)

	return flight
}

// ZoomTo flies to a new zoom level, holding center and rotation constant.
func (c *Controller) ZoomTo(ctx context.Context, zoom float64, onUpdate UpdateFunc) *Flight {
	c.mu.Lock()
	params := FlyToParams{
		Center:   c.state.Center,
		Zoom:     zoom,
		Rotation: c.state.Rotation,
	}
	c.mu.Unlock()
	return c.FlyTo(ctx, params, onUpdate)
}

// PanTo flies to a new center, holding zoom and rotation constant.
func (c *Controller) PanTo(ctx context.Context, center geo.Coordinate, onUpdate UpdateFunc) *Flight {
	c.mu.Lock()
	params := FlyToParams{
		Center:   center,
		Zoom:     c.state.Zoom,
		Rotation: [3]float64{-center.Lng, -center.Lat, 0},
	}
	c.mu.Unlock()
	return c.FlyTo(ctx, params, onUpdate)
}

// Reset flies back to the initial framing.
func (c *Controller) Reset(ctx context.Context, onUpdate UpdateFunc) *Flight {
	return c.FlyTo(ctx, FlyToParams{Center: geo.Coordinate{}, Zoom: 1}, onUpdate)
}

// CancelFlight drops the in-flight transition, if any, resolving its handle
// as superseded. Used on author switch and teardown so a stale transition
// never keeps mutating the view.
func (c *Controller) CancelFlight(ctx context.Context) {
	c.mu.Lock()
	prev := c.flight
	c.flight = nil
	c.mu.Unlock()

	if prev != nil {
		prev.superseded = true
		close(prev.done)
		metrics.RecordFlyToSuperseded()
		c.logger.Debug(ctx, "fly-to cancelled")
	}
}

// Step advances the active flight by dt of wall time, interpolating the
// camera state and invoking the flight's update callback. It is a no-op when
// nothing is in flight.
func (c *Controller) Step(dt time.Duration) {
	c.mu.Lock()
	flight := c.flight
	if flight == nil {
		c.mu.Unlock()
		return
	}

	flight.elapsed += dt
	t := clamp01(float64(flight.elapsed) / float64(flight.params.Duration))
	eased := flight.params.Easing(t)

	c.state.Center = flight.from.Center.Lerp(flight.params.Center, eased)
	c.state.Zoom = lerp(flight.from.Zoom, flight.params.Zoom, eased)
	for i := range c.state.Rotation {
		c.state.Rotation[i] = lerp(flight.from.Rotation[i], flight.params.Rotation[i], eased)
	}

	finished := t >= 1
	if finished {
		// Land exactly on the target, independent of easing rounding.
		c.state.Center = flight.params.Center
		c.state.Zoom = flight.params.Zoom
		c.state.Rotation = flight.params.Rotation
		c.flight = nil
	}
	snapshot := c.state
	c.mu.Unlock()

	if flight.onUpdate != nil {
		flight.onUpdate(snapshot)
	}
	if finished {
		close(flight.done)
	}
}

// InFlight reports whether a transition is currently active.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flight != nil
}
