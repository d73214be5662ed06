package commands

import (
	"context"
	"fmt"
	"log/slog"

	"restaurant-api/internal/domain/reservation"
	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrSlotFull                = errs.New("time slot is fully booked")
	ErrInvalidStatus           = errs.New("invalid reservation status")
	ErrForbiddenTransition     = errs.New("status transition not allowed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	notifier           Notifier
	clock              clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	notifier Notifier,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		notifier:           notifier,
		clock:              clk,
	}
}

// Create books a slot. The occupancy count and the insert run in one
// serializable transaction so two guests cannot both take the last seat.
func (r *reservationUseCaseImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	res, err := req.ToDomain(reservation.Services{Clock: r.clock})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = r.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		occupied, err := tx.Reads().SlotOccupancy(ctx, res.Slot().Date(), res.Slot().Minutes())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if occupied >= reservation.SlotCapacity {
			return ErrSlotFull
		}

		id, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.sendAcknowledgement(ctx, res)

	return r.reservationQueries.GetByID(ctx, id)
}

// UpdateStatus applies a lifecycle transition. The confirmation email goes out
// at most once: only when the row moves into confirmed from another status.
func (r *reservationUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error) {
	next, err := reservation.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	var notify *ReservationNotification
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		current, err := reservation.NewStatus(snap.Status)
		if err != nil {
			return errs.Mark(err, ErrInvalidStatus)
		}
		if !current.CanTransitionTo(next) {
			return ErrForbiddenTransition
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, next, r.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if next == reservation.StatusConfirmed && current != reservation.StatusConfirmed {
			notify = &ReservationNotification{
				GuestName:  snap.GuestName,
				GuestEmail: snap.GuestEmail,
				Date:       snap.Date.Format("2006-01-02"),
				Time:       formatMinutes(snap.TimeMinutes),
				PartySize:  int(snap.PartySize),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notify != nil {
		if err := r.notifier.SendReservationConfirmation(ctx, *notify); err != nil {
			slog.Warn("failed to send confirmation email",
				"reservation_id", id.String(),
				"error", err.Error())
		}
	}

	return r.reservationQueries.GetByID(ctx, id)
}

func (r *reservationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// Acknowledgement failures never undo a committed booking.
func (r *reservationUseCaseImpl) sendAcknowledgement(ctx context.Context, res *reservation.Reservation) {
	note := ReservationNotification{
		GuestName:  res.Contact().Name(),
		GuestEmail: res.Contact().Email(),
		Date:       res.Slot().DateString(),
		Time:       res.Slot().TimeString(),
		PartySize:  res.PartySize().Value(),
	}
	if err := r.notifier.SendReservationAcknowledgement(ctx, note); err != nil {
		slog.Warn("failed to send acknowledgement email",
			"reservation_id", res.ID().String(),
			"error", err.Error())
	}
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
