package model

import "time"

// EventType enumerates the closed set of timeline event kinds.
type EventType int

const (
	// EventLineStart marks the moment a route's line begins growing.
	EventLineStart EventType = iota
	// EventLineProgress marks the temporal midpoint of a growing line.
	EventLineProgress
	// EventLineComplete marks the moment a route's line reaches its destination.
	EventLineComplete
	// EventRippleTrigger fires the destination pulse for routes with a collection.
	EventRippleTrigger
)

// String returns the wire-friendly name of the event type.
func (t EventType) String() string {
	switch t {
	case EventLineStart:
		return "LINE_START"
	case EventLineProgress:
		return "LINE_PROGRESS"
	case EventLineComplete:
		return "LINE_COMPLETE"
	case EventRippleTrigger:
		return "RIPPLE_TRIGGER"
	default:
		return "UNKNOWN"
	}
}

// TimelineEvent is one entry in an author's animation timeline.
// Immutable once built; the full list is rebuilt, never patched, whenever
// the author's routes change.
type TimelineEvent struct {
	Type           EventType
	RouteID        string
	Timestamp      time.Duration // offset from the timeline origin
	ThemeColor     string
	HasCollection  bool
	CollectionMeta *CollectionMeta
}
