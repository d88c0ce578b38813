package match

// EventKind classifies something that happened during a core operation.
type EventKind int

const (
	EventModeSelected EventKind = iota + 1
	EventLaunch
	EventPaddleHit
	EventScore
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventModeSelected:
		return "mode_selected"
	case EventLaunch:
		return "launch"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is reported to the host so it can log, play sounds and present.
// Side is the scorer for EventScore, the winner for EventGameOver and the
// paddle for EventPaddleHit; it is meaningless for the other kinds.
type Event struct {
	Kind EventKind
	Side Side
}

// StepResult is returned by every operation that can change the match.
type StepResult struct {
	Events []Event
	Phase  Phase
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Merge appends the events of other and takes its phase.
func (r StepResult) Merge(other StepResult) StepResult {
	r.Events = append(r.Events, other.Events...)
	r.Phase = other.Phase
	return r
}
