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

func newGalleryFixture() (*fakes.UnitOfWork, *fakes.GalleryQueries, commands.GalleryCommands) {
	uow := fakes.NewUnitOfWork()
	q := &fakes.GalleryQueries{
		View: &queries.GalleryImageView{
			Title:    "Dining room at dusk",
			ImageURL: "https://img.example.com/dining-room.jpg",
		},
	}
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return uow, q, commands.NewGalleryUseCase(uow, q, clk)
}

func TestCreateGalleryImage(t *testing.T) {
	uow, _, uc := newGalleryFixture()

	view, err := uc.Create(context.Background(), reqdto.CreateGalleryImageRequest{
		Title:        "Dining room at dusk",
		ImageURL:     "https://img.example.com/dining-room.jpg",
		DisplayOrder: 2,
	})

	require.NoError(t, err)
	require.NotNil(t, view)
	require.Len(t, uow.Tx.GalleryRepo.Created, 1)
	assert.EqualValues(t, 2, uow.Tx.GalleryRepo.Created[0].DisplayOrder)
}

func TestUpdateGalleryImage(t *testing.T) {
	t.Run("patches only the provided fields", func(t *testing.T) {
		uow, _, uc := newGalleryFixture()

		caption := "Golden hour in the main room"
		_, err := uc.Update(context.Background(), uuid.New(), reqdto.UpdateGalleryImageRequest{
			Caption: &caption,
		})

		require.NoError(t, err)
		require.Len(t, uow.Tx.GalleryRepo.Updated, 1)
		img := uow.Tx.GalleryRepo.Updated[0]
		assert.Equal(t, caption, img.Caption)
		assert.Equal(t, "Dining room at dusk", img.Title)
	})

	t.Run("missing image maps to not found", func(t *testing.T) {
		_, q, uc := newGalleryFixture()
		q.View = nil

		_, err := uc.Update(context.Background(), uuid.New(), reqdto.UpdateGalleryImageRequest{})
		require.ErrorIs(t, err, commands.ErrGalleryImageNotFound)
	})
}

func TestDeleteGalleryImage(t *testing.T) {
	t.Run("deletes an existing image", func(t *testing.T) {
		uow, _, uc := newGalleryFixture()

		id := uuid.New()
		require.NoError(t, uc.Delete(context.Background(), id))
		assert.Equal(t, []uuid.UUID{id}, uow.Tx.GalleryRepo.Deleted)
	})

	t.Run("missing image maps to not found", func(t *testing.T) {
		uow, _, uc := newGalleryFixture()
		uow.Tx.GalleryRepo.DeleteErr = infra.NewRepoErr(infra.KindNotFound, "no such image")

		err := uc.Delete(context.Background(), uuid.New())
		require.ErrorIs(t, err, commands.ErrGalleryImageNotFound)
	})
}
