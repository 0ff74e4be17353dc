package auction

// Status is the lifecycle state of an auction
type Status string

const (
	// StatusActive accepts bids until the end time passes
	StatusActive Status = "ACTIVE"
	// StatusEnded means the time expired; terminal when no winner exists
	StatusEnded Status = "ENDED"
	// StatusCompleted means the auction ended with a winning bid
	StatusCompleted Status = "COMPLETED"
	// StatusCancelled means the seller withdrew the listing while active
	StatusCancelled Status = "CANCELLED"
)

func ToStatus(name string) (Status, bool) {
	switch Status(name) {
	case StatusActive, StatusEnded, StatusCompleted, StatusCancelled:
		return Status(name), true
	}
	return "", false
}

// CanTransitionTo encodes the legal state machine:
// ACTIVE -> ENDED | CANCELLED, ENDED -> COMPLETED.
// ENDED without a winner, COMPLETED and CANCELLED are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusActive:
		return next == StatusEnded || next == StatusCancelled
	case StatusEnded:
		return next == StatusCompleted
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
