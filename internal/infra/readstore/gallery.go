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

type GalleryReadStore struct {
	db db.DBTX
}

func NewGalleryReadStore(dbtx db.DBTX) *GalleryReadStore {
	return &GalleryReadStore{db: dbtx}
}

const galleryViewColumns = `
	id, title, image_url, caption, display_order, created_at`

func (r *GalleryReadStore) FindAll(ctx context.Context) ([]*queries.GalleryImageView, error) {
	const query = `
		SELECT ` + galleryViewColumns + `
		FROM gallery_images
		ORDER BY display_order, created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gallery images", err)
	}
	defer rows.Close()

	result := []*queries.GalleryImageView{}
	for rows.Next() {
		view, err := scanGalleryImageView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan gallery row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate gallery rows", err)
	}

	return result, nil
}

func (r *GalleryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GalleryImageView, error) {
	const query = `
		SELECT ` + galleryViewColumns + `
		FROM gallery_images
		WHERE id = $1`

	view, err := scanGalleryImageView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find gallery image by ID", err)
	}

	return view, nil
}

func scanGalleryImageView(row rowScanner) (*queries.GalleryImageView, error) {
	var (
		view      queries.GalleryImageView
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.Title,
		&view.ImageURL,
		&view.Caption,
		&view.DisplayOrder,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
