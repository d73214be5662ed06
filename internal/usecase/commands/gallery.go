package commands

import (
	"context"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrGalleryImageNotFound = errs.New("gallery image not found")

type GalleryCommands interface {
	Create(ctx context.Context, req reqdto.CreateGalleryImageRequest) (*queries.GalleryImageView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGalleryImageRequest) (*queries.GalleryImageView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryUseCaseImpl struct {
	uow            shared.UnitOfWork
	galleryQueries queries.GalleryQueries
	clock          clock.Clock
}

func NewGalleryUseCase(uow shared.UnitOfWork, galleryQueries queries.GalleryQueries, clk clock.Clock) GalleryCommands {
	return &galleryUseCaseImpl{
		uow:            uow,
		galleryQueries: galleryQueries,
		clock:          clk,
	}
}

func (g *galleryUseCaseImpl) Create(ctx context.Context, req reqdto.CreateGalleryImageRequest) (*queries.GalleryImageView, error) {
	img := &shared.GalleryImage{
		ID:           uuid.New(),
		Title:        req.Title,
		ImageURL:     req.ImageURL,
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    g.clock.Now(),
	}

	var id uuid.UUID
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Gallery().Create(ctx, tx.DB(), img)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g.galleryQueries.GetByID(ctx, id)
}

func (g *galleryUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGalleryImageRequest) (*queries.GalleryImageView, error) {
	current, err := g.galleryQueries.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGalleryImageNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	img := &shared.GalleryImage{
		ID:           id,
		Title:        patch.Coalesce(req.Title, current.Title),
		ImageURL:     patch.Coalesce(req.ImageURL, current.ImageURL),
		Caption:      patch.Coalesce(req.Caption, current.Caption),
		DisplayOrder: patch.Coalesce(req.DisplayOrder, current.DisplayOrder),
		CreatedAt:    current.CreatedAt,
	}

	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Gallery().Update(ctx, tx.DB(), img); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrGalleryImageNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g.galleryQueries.GetByID(ctx, id)
}

func (g *galleryUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Gallery().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrGalleryImageNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
