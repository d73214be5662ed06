package reservation

import (
	"time"

	"github.com/google/uuid"

	"restaurant-api/internal/pkg/clock"
)

type Services struct {
	Clock clock.Clock
}

type Reservation struct {
	id              uuid.UUID
	contact         GuestContact
	slot            Slot
	partySize       PartySize
	specialRequests SpecialRequests
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation creates a pending reservation after rejecting slots that
// already elapsed. Capacity is not checked here; the persistence layer owns
// the occupancy count.
func NewReservation(
	svc Services,
	contact GuestContact,
	slot Slot,
	partySize PartySize,
	specialRequests SpecialRequests,
) (*Reservation, error) {
	now := svc.Clock.Now()
	if slot.IsPastDate(now) {
		return nil, ErrPastDate
	}
	if slot.IsPastTime(now) {
		return nil, ErrPastTime
	}

	return &Reservation{
		id:              uuid.New(),
		contact:         contact,
		slot:            slot,
		partySize:       partySize,
		specialRequests: specialRequests,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	contact GuestContact,
	slot Slot,
	partySize PartySize,
	specialRequests SpecialRequests,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		contact:         contact,
		slot:            slot,
		partySize:       partySize,
		specialRequests: specialRequests,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) Contact() GuestContact            { return r.contact }
func (r *Reservation) Slot() Slot                       { return r.slot }
func (r *Reservation) PartySize() PartySize             { return r.partySize }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }

// TransitionTo moves the reservation to the given status when the transition
// table allows it.
func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return ErrTransitionNotAllowed
	}
	r.status = next
	r.updatedAt = now
	return nil
}
