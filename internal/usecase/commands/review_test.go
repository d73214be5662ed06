//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture() (*fakes.UnitOfWork, *fakes.ReviewQueries, commands.ReviewCommands) {
	uow := fakes.NewUnitOfWork()
	q := &fakes.ReviewQueries{
		View: &queries.ReviewView{
			AuthorName: "Dana",
			Rating:     5,
			Comment:    "The tasting menu was superb.",
		},
	}
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return uow, q, commands.NewReviewUseCase(uow, q, clk)
}

func TestCreateReview(t *testing.T) {
	t.Run("new reviews start unapproved", func(t *testing.T) {
		uow, _, uc := newReviewFixture()

		view, err := uc.Create(context.Background(), reqdto.CreateReviewRequest{
			Name:    "Dana",
			Rating:  5,
			Comment: "The tasting menu was superb.",
		})

		require.NoError(t, err)
		require.NotNil(t, view)
		require.Len(t, uow.Tx.ReviewRepo.Created, 1)
		rev := uow.Tx.ReviewRepo.Created[0]
		assert.False(t, rev.IsApproved())
		assert.False(t, rev.IsFeatured())
	})

	t.Run("rating outside 1..5 fails validation", func(t *testing.T) {
		uow, _, uc := newReviewFixture()

		for _, rating := range []int{0, 6} {
			_, err := uc.Create(context.Background(), reqdto.CreateReviewRequest{
				Name:    "Dana",
				Rating:  rating,
				Comment: "Great",
			})
			require.ErrorIs(t, err, commands.ErrDomainValidation)
		}
		assert.Zero(t, uow.WithinCalls)
	})
}

func TestModerateReview(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	t.Run("approving only touches the approved flag", func(t *testing.T) {
		uow, _, uc := newReviewFixture()

		view, err := uc.Moderate(context.Background(), uuid.New(), reqdto.ModerateReviewRequest{
			IsApproved: boolPtr(true),
		})

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, []bool{true}, uow.Tx.ReviewRepo.Approvals)
		assert.Empty(t, uow.Tx.ReviewRepo.Features)
	})

	t.Run("both flags can change in one call", func(t *testing.T) {
		uow, _, uc := newReviewFixture()

		_, err := uc.Moderate(context.Background(), uuid.New(), reqdto.ModerateReviewRequest{
			IsApproved: boolPtr(true),
			IsFeatured: boolPtr(true),
		})

		require.NoError(t, err)
		assert.Equal(t, []bool{true}, uow.Tx.ReviewRepo.Approvals)
		assert.Equal(t, []bool{true}, uow.Tx.ReviewRepo.Features)
	})

	t.Run("missing review maps to not found", func(t *testing.T) {
		uow, _, uc := newReviewFixture()
		uow.Tx.ReviewRepo.ModerateErr = infra.NewRepoErr(infra.KindNotFound, "no such review")

		_, err := uc.Moderate(context.Background(), uuid.New(), reqdto.ModerateReviewRequest{
			IsApproved: boolPtr(false),
		})
		require.ErrorIs(t, err, commands.ErrReviewNotFound)
	})
}

func TestDeleteReview(t *testing.T) {
	t.Run("deletes an existing review", func(t *testing.T) {
		uow, _, uc := newReviewFixture()

		id := uuid.New()
		require.NoError(t, uc.Delete(context.Background(), id))
		assert.Equal(t, []uuid.UUID{id}, uow.Tx.ReviewRepo.Deleted)
	})

	t.Run("missing review maps to not found", func(t *testing.T) {
		uow, _, uc := newReviewFixture()
		uow.Tx.ReviewRepo.DeleteErr = infra.NewRepoErr(infra.KindNotFound, "no such review")

		err := uc.Delete(context.Background(), uuid.New())
		require.ErrorIs(t, err, commands.ErrReviewNotFound)
	})
}
