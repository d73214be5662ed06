package readstore

import (
	"context"
	"time"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewColumns = `
	id, guest_name, guest_email, guest_phone,
	reservation_date, reservation_time, party_size,
	special_requests, status, created_at, updated_at`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT ` + reservationViewColumns + `
		FROM reservations
		WHERE id = $1`

	view, err := scanReservationView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (r *ReservationReadStore) Find(ctx context.Context, filter queries.ReservationFilter, limit, offset int32) ([]*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationViewColumns + `
		FROM reservations
		WHERE ($1::date IS NULL OR reservation_date = $1)
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY reservation_date DESC, reservation_time DESC, created_at DESC
		LIMIT $3 OFFSET $4`

	var date pgtype.Date
	if filter.Date != nil {
		date = pgconv.DateToPgtype(*filter.Date)
	}

	rows, err := r.db.Query(ctx, query, date, filter.Status, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return collectReservationViews(rows)
}

func (r *ReservationReadStore) CountSlotOccupancy(ctx context.Context, date time.Time, timeMinutes int) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM reservations
		WHERE reservation_date = $1
		  AND reservation_time = $2
		  AND status = ANY($3)`

	var count int64
	err := r.db.QueryRow(ctx, query,
		pgconv.DateToPgtype(date),
		pgconv.MinutesToPgTime(timeMinutes),
		reservation.CapacityCountingStatuses(),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count slot occupancy", err)
	}

	return count, nil
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	result := []*queries.ReservationView{}
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		date      pgtype.Date
		slotTime  pgtype.Time
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.GuestName,
		&view.GuestEmail,
		&view.GuestPhone,
		&date,
		&slotTime,
		&view.PartySize,
		&view.SpecialRequests,
		&view.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	minutes := pgconv.MinutesFromPgTime(slotTime)
	view.Date = pgconv.DateFromPgtype(date).Format("2006-01-02")
	view.Time = formatMinutes(minutes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func formatMinutes(minutes int) string {
	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format("15:04")
}
