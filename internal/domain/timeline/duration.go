package timeline

import (
	"time"

	"github.com/mkarimian/geochron/internal/domain/model"
)

// DurationPolicy assigns a route its line growth duration. prev is the
// chronologically preceding route, nil for the first one.
type DurationPolicy func(route model.Route, prev *model.Route) time.Duration

// ConstantDuration gives every route the same duration.
func ConstantDuration(d time.Duration) DurationPolicy {
	return func(model.Route, *model.Route) time.Duration {
		return d
	}
}

// DistanceScaled grows the duration with the great-circle distance between
// the route's endpoints: base plus perKm for each kilometer.
func DistanceScaled(base, perKm time.Duration) DurationPolicy {
	return func(route model.Route, _ *model.Route) time.Duration {
		km := route.StartLocation.Coordinates.Distance(route.EndLocation.Coordinates)
		return base + time.Duration(km*float64(perKm))
	}
}

// YearGapScaled grows the duration with the year gap to the previous route:
// base plus perYear for each elapsed year, capped at max when max > 0.
func YearGapScaled(base, perYear, max time.Duration) DurationPolicy {
	return func(route model.Route, prev *model.Route) time.Duration {
		d := base
		if prev != nil && route.Year > prev.Year {
			d += time.Duration(route.Year-prev.Year) * perYear
		}
		if max > 0 && d > max {
			d = max
		}
		return d
	}
}
