package appointment

// Status is the appointment lifecycle state. Only pending and booked block
// other bookings; cancelled and completed are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusBooked, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Blocking reports whether an appointment in this status participates in
// conflict checks.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusBooked
}

// CanTransitionTo enforces the lifecycle:
// pending -> booked | cancelled; booked -> completed | cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusBooked || next == StatusCancelled
	case StatusBooked:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// BlockingStatuses are the statuses the conflict query filters on.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusBooked}
}
