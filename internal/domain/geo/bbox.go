package geo

import "fmt"

// minSpanDegrees is the smallest per-axis extent a bounding box may have.
// A box built from identical points is widened to this span so downstream
// zoom math never divides by zero.
const minSpanDegrees = 0.01

// BoundingBox is the minimal geographic rectangle enclosing a set of points.
// Invariant: West < East and South < North.
type BoundingBox struct {
	West  float64 `json:"west"`
	East  float64 `json:"east"`
	South float64 `json:"south"`
	North float64 `json:"north"`
}

// Width returns the longitudinal extent in degrees.
func (b BoundingBox) Width() float64 { return b.East - b.West }

// Height returns the latitudinal extent in degrees.
func (b BoundingBox) Height() float64 { return b.North - b.South }

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.South + b.North) / 2,
		Lng: (b.West + b.East) / 2,
	}
}

// Pad grows the box by the given fraction of each axis span, symmetrically.
func (b BoundingBox) Pad(fraction float64) BoundingBox {
	dx := b.Width() * fraction
	dy := b.Height() * fraction
	return BoundingBox{
		West:  b.West - dx,
		East:  b.East + dx,
		South: b.South - dy,
		North: b.North + dy,
	}
}

// Validate reports whether the box invariant holds.
func (b BoundingBox) Validate() error {
	if b.West >= b.East || b.South >= b.North {
		return fmt.Errorf("%w: [%v,%v]x[%v,%v]", ErrDegenerateBounds, b.West, b.East, b.South, b.North)
	}
	return nil
}

// BBoxFromCoordinates computes the bounding box of the given points, widening
// any collapsed axis to minSpanDegrees. An empty input is an error; everything
// else is recoverable.
func BBoxFromCoordinates(coords []Coordinate) (BoundingBox, error) {
	if len(coords) == 0 {
		return BoundingBox{}, ErrNoCoordinates
	}

	b := BoundingBox{
		West:  coords[0].Lng,
		East:  coords[0].Lng,
		South: coords[0].Lat,
		North: coords[0].Lat,
	}
	for _, c := range coords[1:] {
		if c.Lng < b.West {
			b.West = c.Lng
		}
		if c.Lng > b.East {
			b.East = c.Lng
		}
		if c.Lat < b.South {
			b.South = c.Lat
		}
		if c.Lat > b.North {
			b.North = c.Lat
		}
	}

	return b.EnsureMinSpan(), nil
}

// EnsureMinSpan widens collapsed axes around their midpoint.
func (b BoundingBox) EnsureMinSpan() BoundingBox {
	if b.Width() < minSpanDegrees {
		mid := (b.West + b.East) / 2
		b.West = mid - minSpanDegrees/2
		b.East = mid + minSpanDegrees/2
	}
	if b.Height() < minSpanDegrees {
		mid := (b.South + b.North) / 2
		b.South = mid - minSpanDegrees/2
		b.North = mid + minSpanDegrees/2
	}
	return b
}
