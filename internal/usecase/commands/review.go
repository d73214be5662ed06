package commands

import (
	"context"

	"restaurant-api/internal/domain/review"
	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewCommands interface {
	Create(ctx context.Context, req reqdto.CreateReviewRequest) (*queries.ReviewView, error)
	Moderate(ctx context.Context, id uuid.UUID, req reqdto.ModerateReviewRequest) (*queries.ReviewView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow           shared.UnitOfWork
	reviewQueries queries.ReviewQueries
	clock         clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, reviewQueries queries.ReviewQueries, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{
		uow:           uow,
		reviewQueries: reviewQueries,
		clock:         clk,
	}
}

// Create stores the submission unapproved; it stays invisible to the public
// listing until moderated.
func (r *reviewUseCaseImpl) Create(ctx context.Context, req reqdto.CreateReviewRequest) (*queries.ReviewView, error) {
	author, err := review.NewAuthor(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	comment, err := review.NewComment(req.Comment)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	rev := review.NewReview(author, rating, comment, r.clock.Now())

	var id uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reviewQueries.GetByID(ctx, id)
}

func (r *reviewUseCaseImpl) Moderate(ctx context.Context, id uuid.UUID, req reqdto.ModerateReviewRequest) (*queries.ReviewView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		if req.IsApproved != nil {
			if err := tx.Reviews().SetApproved(ctx, tx.DB(), id, patch.Coalesce(req.IsApproved, false), now); err != nil {
				return mapReviewRepoErr(err)
			}
		}
		if req.IsFeatured != nil {
			if err := tx.Reviews().SetFeatured(ctx, tx.DB(), id, patch.Coalesce(req.IsFeatured, false), now); err != nil {
				return mapReviewRepoErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reviewQueries.GetByID(ctx, id)
}

func (r *reviewUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reviews().Delete(ctx, tx.DB(), id); err != nil {
			return mapReviewRepoErr(err)
		}
		return nil
	})
}

func mapReviewRepoErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReviewNotFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
