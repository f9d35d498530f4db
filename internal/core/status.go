package core

// Status is the lifecycle position of a game session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusEnded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}
