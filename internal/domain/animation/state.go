package animation

// State is the discrete animation phase of a feature at a point in time.
type State int

const (
	// StateHidden means the feature's start time has not been reached.
	StateHidden State = iota
	// StateGrowing means the feature's line is extending toward its destination.
	StateGrowing
	// StateRippling means the destination pulse is playing.
	StateRippling
	// StateActive means all animation phases have completed.
	StateActive
)

// String returns the phase name.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "HIDDEN"
	case StateGrowing:
		return "GROWING"
	case StateRippling:
		return "RIPPLING"
	case StateActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}
