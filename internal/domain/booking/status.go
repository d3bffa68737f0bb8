package booking

import "github.com/EnamulBokshi/skillbridge-server/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusRejected  Status = "REJECTED"
)

type Event string

const (
	EventConfirm  Event = "confirm"
	EventReject   Event = "reject"
	EventCancel   Event = "cancel"
	EventComplete Event = "complete"
)

// transitions is the single authority for the lifecycle. Anything not listed
// here is rejected; terminal states have no outgoing edges.
var transitions = map[Status]map[Event]Status{
	StatusPending: {
		EventConfirm: StatusConfirmed,
		EventCancel:  StatusCancelled,
		EventReject:  StatusRejected,
	},
	StatusConfirmed: {
		EventCancel:   StatusCancelled,
		EventComplete: StatusCompleted,
	},
}

func InitialStatus() Status {
	return StatusPending
}

// Next resolves the state an event moves a booking into.
func Next(current Status, ev Event) (Status, error) {
	next, ok := transitions[current][ev]
	if !ok {
		return "", httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return next, nil
}

func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// IsValid reports whether s is one of the five lifecycle states.
func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRejected:
		return true
	}
	return false
}
