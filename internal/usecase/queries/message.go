package queries

import (
	"context"

	"github.com/google/uuid"
)

type MessageQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MessageView, error)
	List(ctx context.Context, unreadOnly bool, limit, offset int) ([]*MessageView, error)
}

type MessageViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MessageView, error)
	Find(ctx context.Context, unreadOnly bool, limit, offset int32) ([]*MessageView, error)
}

type messageQueriesImpl struct {
	repo MessageViewRepo
}

func NewMessageQueries(repo MessageViewRepo) MessageQueries {
	return &messageQueriesImpl{repo: repo}
}

func (q *messageQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MessageView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *messageQueriesImpl) List(ctx context.Context, unreadOnly bool, limit, offset int) ([]*MessageView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.Find(ctx, unreadOnly, int32(limit), int32(offset)) //nolint:gosec
}
