package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

// transitions is the full state machine. Canceled and completed are
// terminal; a generic update cannot move an appointment out of them.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled, StatusCompleted},
	StatusConfirmed: {StatusCanceled, StatusCompleted},
	StatusCanceled:  {},
	StatusCompleted: {},
}

func InitialStatus() Status {
	return StatusPending
}

func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
