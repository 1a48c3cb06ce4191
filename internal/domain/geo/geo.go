// Package geo contains the geographic value types shared across the engine.
package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Coordinate is an immutable geographic position (WGS 84).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate reports whether the coordinate is finite and within range.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return fmt.Errorf("%w: non-finite coordinate (%v, %v)", ErrInvalidCoordinate, c.Lat, c.Lng)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinate, c.Lng)
	}
	return nil
}

// Distance returns the great-circle distance to other in kilometers.
func (c Coordinate) Distance(other Coordinate) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLng := (other.Lng - c.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Lerp linearly interpolates between c and other by t in [0,1].
func (c Coordinate) Lerp(other Coordinate, t float64) Coordinate {
	return Coordinate{
		Lat: c.Lat + (other.Lat-c.Lat)*t,
		Lng: c.Lng + (other.Lng-c.Lng)*t,
	}
}
