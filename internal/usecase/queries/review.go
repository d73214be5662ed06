package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListApproved(ctx context.Context, limit, offset int) ([]*ReviewView, error)
	Featured(ctx context.Context) ([]*ReviewView, error)
	List(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*ReviewView, error)
	Summary(ctx context.Context) (*RatingSummaryView, error)
}

type ReviewViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	Find(ctx context.Context, filter ReviewFilter, limit, offset int32) ([]*ReviewView, error)
	// Summarize averages approved reviews only.
	Summarize(ctx context.Context) (*RatingSummaryView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	return q.repo.FindByID(ctx, id)
}

// maxPublicReviewLimit caps the public listing regardless of the requested page size.
const maxPublicReviewLimit = 50

func (q *reviewQueriesImpl) ListApproved(ctx context.Context, limit, offset int) ([]*ReviewView, error) {
	if limit > maxPublicReviewLimit {
		limit = maxPublicReviewLimit
	}
	return q.List(ctx, ReviewFilter{OnlyApproved: true}, limit, offset)
}

func (q *reviewQueriesImpl) Featured(ctx context.Context) ([]*ReviewView, error) {
	return q.List(ctx, ReviewFilter{OnlyApproved: true, OnlyFeatured: true}, 0, 0)
}

func (q *reviewQueriesImpl) List(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*ReviewView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.Find(ctx, filter, int32(limit), int32(offset)) //nolint:gosec
}

func (q *reviewQueriesImpl) Summary(ctx context.Context) (*RatingSummaryView, error) {
	return q.repo.Summarize(ctx)
}
