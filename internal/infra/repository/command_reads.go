package repository

import (
	"context"
	"time"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

func (r *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT id, guest_name, guest_email, guest_phone,
		       reservation_date, reservation_time, party_size,
		       special_requests, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	var (
		snap      shared.ReservationSnapshot
		date      pgtype.Date
		slotTime  pgtype.Time
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.GuestName,
		&snap.GuestEmail,
		&snap.GuestPhone,
		&date,
		&slotTime,
		&snap.PartySize,
		&snap.SpecialRequests,
		&snap.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}

	snap.Date = pgconv.DateFromPgtype(date)
	snap.TimeMinutes = pgconv.MinutesFromPgTime(slotTime)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &snap, nil
}

func (r *CommandReads) SlotOccupancy(ctx context.Context, date time.Time, timeMinutes int) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM reservations
		WHERE reservation_date = $1
		  AND reservation_time = $2
		  AND status = ANY($3)`

	var count int64
	err := r.dbtx.QueryRow(ctx, query,
		pgconv.DateToPgtype(date),
		pgconv.MinutesToPgTime(timeMinutes),
		reservation.CapacityCountingStatuses(),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count slot occupancy", err)
	}

	return count, nil
}

func (r *CommandReads) CategoryByID(ctx context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	const query = `
		SELECT c.id, c.name, c.slug, c.description, c.display_order,
		       COUNT(i.id) AS item_count, c.created_at
		FROM menu_categories c
		LEFT JOIN menu_items i ON i.category_id = c.id
		WHERE c.id = $1
		GROUP BY c.id`

	var (
		snap      shared.CategorySnapshot
		createdAt pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Slug,
		&snap.Description,
		&snap.DisplayOrder,
		&snap.ItemCount,
		&createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get category", err)
	}

	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &snap, nil
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, role, is_active, last_login
		FROM users
		WHERE email = $1`

	return r.scanUser(r.dbtx.QueryRow(ctx, query, email))
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, role, is_active, last_login
		FROM users
		WHERE id = $1`

	return r.scanUser(r.dbtx.QueryRow(ctx, query, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CommandReads) scanUser(row rowScanner) (*shared.UserSnapshot, error) {
	var (
		snap      shared.UserSnapshot
		lastLogin pgtype.Timestamptz
	)
	err := row.Scan(&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Role, &snap.IsActive, &lastLogin)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user", err)
	}

	snap.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)

	return &snap, nil
}
