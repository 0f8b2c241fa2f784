package transport

// State represents the transport's playback state. The transport is
// the single authority for it; every stem starts and stops together.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
	StateStopped
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// loaded reports whether the stems are decoded and playback commands
// are meaningful.
func (s State) loaded() bool {
	switch s {
	case StateReady, StatePlaying, StatePaused, StateStopped:
		return true
	}
	return false
}
