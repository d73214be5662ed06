package queries

import (
	"context"
	"time"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/pkg/clock"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, limit, offset int) ([]*ReservationView, error)
	// CheckAvailability is advisory; the authoritative capacity check runs
	// inside the booking transaction.
	CheckAvailability(ctx context.Context, dateStr, timeStr string) (*AvailabilityView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	Find(ctx context.Context, filter ReservationFilter, limit, offset int32) ([]*ReservationView, error)
	CountSlotOccupancy(ctx context.Context, date time.Time, timeMinutes int) (int64, error)
}

type reservationQueriesImpl struct {
	repo  ReservationViewRepo
	clock clock.Clock
}

func NewReservationQueries(repo ReservationViewRepo, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, limit, offset int) ([]*ReservationView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.Find(ctx, filter, int32(limit), int32(offset)) //nolint:gosec
}

func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, dateStr, timeStr string) (*AvailabilityView, error) {
	slot, err := reservation.NewSlot(dateStr, timeStr)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		Date:     slot.DateString(),
		Time:     slot.TimeString(),
		Capacity: reservation.SlotCapacity,
	}

	if slot.IsPastDate(q.clock.Now()) {
		view.Message = "Cannot check availability for past dates"
		return view, nil
	}

	count, err := q.repo.CountSlotOccupancy(ctx, slot.Date(), slot.Minutes())
	if err != nil {
		return nil, err
	}

	view.OccupiedSlots = count
	view.Available = count < reservation.SlotCapacity
	if !view.Available {
		view.Message = "This time slot is fully booked, please choose another time"
	}

	return view, nil
}
