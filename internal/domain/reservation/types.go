package reservation

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

// SlotCapacity is the maximum number of non-cancelled reservations per (date, time) slot.
const SlotCapacity = 5

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CountsAgainstCapacity reports whether a reservation in this status occupies slot capacity.
func (s Status) CountsAgainstCapacity() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CapacityCountingStatuses lists the status values occupancy queries filter on,
// so the SQL stays in sync with CountsAgainstCapacity.
func CapacityCountingStatuses() []string {
	all := []Status{StatusPending, StatusConfirmed, StatusCancelled}
	counted := make([]string, 0, len(all))
	for _, s := range all {
		if s.CountsAgainstCapacity() {
			counted = append(counted, s.String())
		}
	}
	return counted
}

// allowedTransitions is the explicit transition table. Every state currently accepts a
// transition to any other state (including cancelled→confirmed); tightening the policy
// is an edit here, not a rewrite.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusPending, StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPending, StatusConfirmed, StatusCancelled},
	StatusCancelled: {StatusPending, StatusConfirmed, StatusCancelled},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
