package readstore

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

const eventViewColumns = `
	id, title, description, start_date, end_date,
	image_url, is_active, created_at, updated_at`

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	const query = `
		SELECT ` + eventViewColumns + `
		FROM events
		WHERE id = $1`

	view, err := scanEventView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	return view, nil
}

func (r *EventReadStore) FindUpcoming(ctx context.Context, from string) ([]*queries.EventView, error) {
	const query = `
		SELECT ` + eventViewColumns + `
		FROM events
		WHERE is_active AND end_date >= $1::date
		ORDER BY start_date, title`

	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming events", err)
	}
	defer rows.Close()

	return collectEventViews(rows)
}

func (r *EventReadStore) FindAll(ctx context.Context, limit, offset int32) ([]*queries.EventView, error) {
	const query = `
		SELECT ` + eventViewColumns + `
		FROM events
		ORDER BY start_date DESC, title
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	return collectEventViews(rows)
}

func collectEventViews(rows pgx.Rows) ([]*queries.EventView, error) {
	result := []*queries.EventView{}
	for rows.Next() {
		view, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}

	return result, nil
}

func scanEventView(row rowScanner) (*queries.EventView, error) {
	var (
		view      queries.EventView
		startDate pgtype.Date
		endDate   pgtype.Date
		imageURL  pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.Title,
		&view.Description,
		&startDate,
		&endDate,
		&imageURL,
		&view.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.StartDate = pgconv.DateFromPgtype(startDate).Format("2006-01-02")
	view.EndDate = pgconv.DateFromPgtype(endDate).Format("2006-01-02")
	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}
