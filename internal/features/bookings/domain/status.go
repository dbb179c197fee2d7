package domain

import tracking "tourism-tracker/internal/features/tracking/domain"

// validTransitions is the booking status state machine. Attended and
// cancelled are terminal; cancellation is reachable from any earlier state.
var validTransitions = map[tracking.Status][]tracking.Status{
	tracking.StatusPending:   {tracking.StatusConfirmed, tracking.StatusAttended, tracking.StatusCancelled},
	tracking.StatusConfirmed: {tracking.StatusAttended, tracking.StatusCancelled},
	tracking.StatusAttended:  {},
	tracking.StatusCancelled: {},
}

// IsValidStatus reports whether s is a recognized booking status.
func IsValidStatus(s tracking.Status) bool {
	_, ok := validTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are possible from s.
func IsTerminal(s tracking.Status) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to tracking.Status) bool {
	for _, t := range validTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
