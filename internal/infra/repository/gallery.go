package repository

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type GalleryRepository struct{}

func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{}
}

func (r *GalleryRepository) Create(ctx context.Context, dbtx db.DBTX, img *shared.GalleryImage) (uuid.UUID, error) {
	const query = `
		INSERT INTO gallery_images (
			id, title, image_url, caption, display_order, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		img.ID,
		img.Title,
		img.ImageURL,
		img.Caption,
		img.DisplayOrder,
		pgconv.TimeToPgtype(img.CreatedAt),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create gallery image", err)
	}

	return id, nil
}

func (r *GalleryRepository) Update(ctx context.Context, dbtx db.DBTX, img *shared.GalleryImage) error {
	const query = `
		UPDATE gallery_images
		SET title = $2, image_url = $3, caption = $4, display_order = $5
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, img.ID, img.Title, img.ImageURL, img.Caption, img.DisplayOrder)
	if err != nil {
		return infra.WrapRepoErr("failed to update gallery image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "gallery image not found")
	}

	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete gallery image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "gallery image not found")
	}

	return nil
}
