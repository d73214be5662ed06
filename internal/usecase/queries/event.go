package queries

import (
	"context"

	"restaurant-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	// ListUpcoming returns active events that have not ended yet.
	ListUpcoming(ctx context.Context) ([]*EventView, error)
	ListAll(ctx context.Context, limit, offset int) ([]*EventView, error)
}

type EventViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindUpcoming(ctx context.Context, from string) ([]*EventView, error)
	FindAll(ctx context.Context, limit, offset int32) ([]*EventView, error)
}

type eventQueriesImpl struct {
	repo  EventViewRepo
	clock clock.Clock
}

func NewEventQueries(repo EventViewRepo, clk clock.Clock) EventQueries {
	return &eventQueriesImpl{repo: repo, clock: clk}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *eventQueriesImpl) ListUpcoming(ctx context.Context) ([]*EventView, error) {
	return q.repo.FindUpcoming(ctx, q.clock.Now().UTC().Format("2006-01-02"))
}

func (q *eventQueriesImpl) ListAll(ctx context.Context, limit, offset int) ([]*EventView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindAll(ctx, int32(limit), int32(offset)) //nolint:gosec
}
