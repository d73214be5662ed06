package queries

import (
	"context"

	"github.com/google/uuid"
)

type GalleryQueries interface {
	List(ctx context.Context) ([]*GalleryImageView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GalleryImageView, error)
}

type GalleryViewRepo interface {
	FindAll(ctx context.Context) ([]*GalleryImageView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GalleryImageView, error)
}

type galleryQueriesImpl struct {
	repo GalleryViewRepo
}

func NewGalleryQueries(repo GalleryViewRepo) GalleryQueries {
	return &galleryQueriesImpl{repo: repo}
}

func (q *galleryQueriesImpl) List(ctx context.Context) ([]*GalleryImageView, error) {
	return q.repo.FindAll(ctx)
}

func (q *galleryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GalleryImageView, error) {
	return q.repo.FindByID(ctx, id)
}
