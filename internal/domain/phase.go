package domain

// Phase is the position of a single exchange in its lifecycle.
//
//	Idle -> Connecting -> Connected -> Sending -> Receiving -> Closed
//
// Any phase may move to Failed. Closed and Failed are terminal.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseConnecting
	PhaseConnected
	PhaseSending
	PhaseReceiving
	PhaseClosed
	PhaseFailed
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseConnecting:
		return "Connecting"
	case PhaseConnected:
		return "Connected"
	case PhaseSending:
		return "Sending"
	case PhaseReceiving:
		return "Receiving"
	case PhaseClosed:
		return "Closed"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition is possible from p.
func (p Phase) Terminal() bool {
	return p == PhaseClosed || p == PhaseFailed
}

// CanTransitionTo reports whether moving from p to next is allowed.
func (p Phase) CanTransitionTo(next Phase) bool {
	if p.Terminal() {
		return false
	}
	if next == PhaseFailed {
		return true
	}
	return next == p+1
}
