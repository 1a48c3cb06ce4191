// Package model contains domain models passed between layers.
package model

import "github.com/mkarimian/geochron/internal/domain/geo"

// Location is a named place with coordinates.
type Location struct {
	Name        string         `json:"name"`
	Coordinates geo.Coordinate `json:"coordinates"`
}

// CollectionMeta describes the collection record attached to a route destination.
type CollectionMeta struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// CollectionInfo marks whether a route destination carries a collection record.
type CollectionInfo struct {
	HasCollection bool            `json:"has_collection"`
	Meta          *CollectionMeta `json:"meta,omitempty"`
}

// Route is a single dated journey between two named locations.
// It is immutable planning data owned by its Author payload; never mutated
// after load.
type Route struct {
	ID             string         `json:"id"`
	Year           int            `json:"year"` // zero means unset; resolved against the owning work
	StartLocation  Location       `json:"start_location"`
	EndLocation    Location       `json:"end_location"`
	CollectionInfo CollectionInfo `json:"collection_info"`
}

// Work groups the routes belonging to one published work.
type Work struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Year   int     `json:"year"` // fallback year for routes that carry none
	Routes []Route `json:"routes"`
}

// Author is one loaded biography payload. Replaced wholesale on re-load.
type Author struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ThemeColor string `json:"theme_color"`
	Works      []Work `json:"works"`
}

// Routes returns the author's routes flattened in work order.
func (a *Author) Routes() []Route {
	var routes []Route
	for _, w := range a.Works {
		routes = append(routes, w.Routes...)
	}
	return routes
}

// Coordinates returns every route endpoint across the author's works.
func (a *Author) Coordinates() []geo.Coordinate {
	var coords []geo.Coordinate
	for _, r := range a.Routes() {
		coords = append(coords, r.StartLocation.Coordinates, r.EndLocation.Coordinates)
	}
	return coords
}
