package playback

// State represents the playback state.
type State int

const (
	StateStopped State = iota
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// LoopMode defines how the frame index advances over time.
type LoopMode int

const (
	// LoopForward wraps from the last frame back to the first.
	LoopForward LoopMode = iota
	// LoopOnce stops on the last frame.
	LoopOnce
	// LoopBounce ping-pongs between the first and last frame.
	LoopBounce
)

// String returns the loop mode name.
func (m LoopMode) String() string {
	switch m {
	case LoopForward:
		return "Loop"
	case LoopOnce:
		return "Once"
	case LoopBounce:
		return "Bounce"
	default:
		return "Unknown"
	}
}
