package readstore

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewColumns = `
	id, author_name, rating, comment, is_approved, is_featured, created_at`

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	const query = `
		SELECT ` + reviewViewColumns + `
		FROM reviews
		WHERE id = $1`

	view, err := scanReviewView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}

	return view, nil
}

func (r *ReviewReadStore) Find(ctx context.Context, filter queries.ReviewFilter, limit, offset int32) ([]*queries.ReviewView, error) {
	const query = `
		SELECT ` + reviewViewColumns + `
		FROM reviews
		WHERE (NOT $1::bool OR is_approved)
		  AND (NOT $2::bool OR is_featured)
		  AND (NOT $3::bool OR NOT is_approved)
		ORDER BY created_at DESC
		LIMIT NULLIF($4, 0) OFFSET $5`

	rows, err := r.db.Query(ctx, query,
		filter.OnlyApproved,
		filter.OnlyFeatured,
		filter.OnlyPending,
		limit,
		offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	result := []*queries.ReviewView{}
	for rows.Next() {
		view, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return result, nil
}

func (r *ReviewReadStore) Summarize(ctx context.Context) (*queries.RatingSummaryView, error) {
	const query = `
		SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0), COUNT(*)
		FROM reviews
		WHERE is_approved`

	var view queries.RatingSummaryView
	err := r.db.QueryRow(ctx, query).Scan(&view.AverageRating, &view.ReviewCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize reviews", err)
	}

	return &view, nil
}

func scanReviewView(row rowScanner) (*queries.ReviewView, error) {
	var (
		view      queries.ReviewView
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.AuthorName,
		&view.Rating,
		&view.Comment,
		&view.IsApproved,
		&view.IsFeatured,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
