package repository

import (
	"context"
	"time"

	"restaurant-api/internal/domain/review"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (
			id, author_name, rating, comment,
			is_approved, is_featured, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		rev.ID(),
		rev.Author().Name(),
		int32(rev.Rating().Value()),
		rev.Comment().String(),
		rev.IsApproved(),
		rev.IsFeatured(),
		pgconv.TimeToPgtype(rev.CreatedAt()),
		pgconv.TimeToPgtype(rev.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}

	return id, nil
}

func (r *ReviewRepository) SetApproved(ctx context.Context, dbtx db.DBTX, id uuid.UUID, approved bool, now time.Time) error {
	const query = `
		UPDATE reviews
		SET is_approved = $2, updated_at = $3
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, approved, pgconv.TimeToPgtype(now))
	if err != nil {
		return infra.WrapRepoErr("failed to update review approval", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "review not found")
	}

	return nil
}

func (r *ReviewRepository) SetFeatured(ctx context.Context, dbtx db.DBTX, id uuid.UUID, featured bool, now time.Time) error {
	const query = `
		UPDATE reviews
		SET is_featured = $2, updated_at = $3
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, featured, pgconv.TimeToPgtype(now))
	if err != nil {
		return infra.WrapRepoErr("failed to update review featured flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "review not found")
	}

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "review not found")
	}

	return nil
}
