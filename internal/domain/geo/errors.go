package geo

import "errors"

// Sentinel kinds for geometry errors.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrNoCoordinates     = errors.New("no coordinates")
	ErrDegenerateBounds  = errors.New("degenerate bounding box")
)
