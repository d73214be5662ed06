package repository

import (
	"context"

	"restaurant-api/internal/domain/event"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, dbtx db.DBTX, ev *event.Event) (uuid.UUID, error) {
	const query = `
		INSERT INTO events (
			id, title, description, start_date, end_date,
			image_url, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		ev.ID(),
		ev.Title().String(),
		ev.Description().String(),
		pgconv.DateToPgtype(ev.Schedule().StartDate()),
		pgconv.DateToPgtype(ev.Schedule().EndDate()),
		pgconv.StringPtrToPgtype(ev.ImageURL()),
		ev.IsActive(),
		pgconv.TimeToPgtype(ev.CreatedAt()),
		pgconv.TimeToPgtype(ev.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err)
	}

	return id, nil
}

func (r *EventRepository) Update(ctx context.Context, dbtx db.DBTX, ev *event.Event) error {
	const query = `
		UPDATE events
		SET title = $2, description = $3, start_date = $4, end_date = $5,
		    image_url = $6, is_active = $7, updated_at = $8
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		ev.ID(),
		ev.Title().String(),
		ev.Description().String(),
		pgconv.DateToPgtype(ev.Schedule().StartDate()),
		pgconv.DateToPgtype(ev.Schedule().EndDate()),
		pgconv.StringPtrToPgtype(ev.ImageURL()),
		ev.IsActive(),
		pgconv.TimeToPgtype(ev.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}

	return nil
}
