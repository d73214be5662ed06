package repository

import (
	"context"
	"time"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (
			id, guest_name, guest_email, guest_phone,
			reservation_date, reservation_time, party_size,
			special_requests, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		res.ID(),
		res.Contact().Name(),
		res.Contact().Email(),
		res.Contact().Phone(),
		pgconv.DateToPgtype(res.Slot().Date()),
		pgconv.MinutesToPgTime(res.Slot().Minutes()),
		int32(res.PartySize().Value()),
		res.SpecialRequests().String(),
		res.Status().String(),
		pgconv.TimeToPgtype(res.CreatedAt()),
		pgconv.TimeToPgtype(res.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status, now time.Time) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = $3
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String(), pgconv.TimeToPgtype(now))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}

	return nil
}
