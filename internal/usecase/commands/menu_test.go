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
	"restaurant-api/internal/usecase/shared"
	"restaurant-api/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuFixture() (*fakes.UnitOfWork, *fakes.MenuQueries, commands.MenuCommands) {
	uow := fakes.NewUnitOfWork()
	q := &fakes.MenuQueries{
		Item: &queries.MenuItemView{
			Name:        "Grilled Halloumi",
			PriceCents:  1250,
			IsAvailable: true,
		},
	}
	// The create and update paths re-read the category through the query
	// side, so reflect whatever the repo recorded.
	q.CategoriesFn = func() []*queries.CategoryView {
		var views []*queries.CategoryView
		for _, cat := range append(uow.Tx.CategoryRepo.Created, uow.Tx.CategoryRepo.Updated...) {
			views = append(views, &queries.CategoryView{
				ID:           cat.ID(),
				Name:         cat.Name().String(),
				Slug:         cat.Slug(),
				DisplayOrder: cat.DisplayOrder(),
			})
		}
		return views
	}
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return uow, q, commands.NewMenuUseCase(uow, q, clk)
}

func TestCreateCategory(t *testing.T) {
	t.Run("derives the slug from the name", func(t *testing.T) {
		uow, _, uc := newMenuFixture()

		view, err := uc.CreateCategory(context.Background(), reqdto.CreateCategoryRequest{
			Name:         "Seasonal Specials",
			DisplayOrder: 3,
		})

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, "Seasonal Specials", view.Name)
		assert.Equal(t, "seasonal-specials", view.Slug)
		require.Len(t, uow.Tx.CategoryRepo.Created, 1)
	})

	t.Run("duplicate name maps to a conflict", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.CategoryRepo.CreateErr = infra.NewRepoErr(infra.KindDuplicateKey, "duplicate slug")

		_, err := uc.CreateCategory(context.Background(), reqdto.CreateCategoryRequest{Name: "Mains"})
		require.ErrorIs(t, err, commands.ErrDuplicateCategory)
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		uow, _, uc := newMenuFixture()

		_, err := uc.CreateCategory(context.Background(), reqdto.CreateCategoryRequest{Name: "  "})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Zero(t, uow.WithinCalls)
	})
}

func TestUpdateCategory(t *testing.T) {
	snapshot := func() *shared.CategorySnapshot {
		return &shared.CategorySnapshot{
			ID:           uuid.New(),
			Name:         "Mains",
			Slug:         "mains",
			Description:  "Hearty plates",
			DisplayOrder: 2,
			CreatedAt:    time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		}
	}

	t.Run("renaming regenerates the slug", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.CommandReadsFake.Category = snapshot()

		name := "Large Plates"
		view, err := uc.UpdateCategory(context.Background(), uow.Tx.CommandReadsFake.Category.ID, reqdto.UpdateCategoryRequest{Name: &name})

		require.NoError(t, err)
		require.Len(t, uow.Tx.CategoryRepo.Updated, 1)
		assert.Equal(t, "Large Plates", view.Name)
		assert.Equal(t, "large-plates", view.Slug)
	})

	t.Run("untouched fields keep their values", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.CommandReadsFake.Category = snapshot()

		order := int32(7)
		_, err := uc.UpdateCategory(context.Background(), uow.Tx.CommandReadsFake.Category.ID, reqdto.UpdateCategoryRequest{DisplayOrder: &order})

		require.NoError(t, err)
		require.Len(t, uow.Tx.CategoryRepo.Updated, 1)
		cat := uow.Tx.CategoryRepo.Updated[0]
		assert.Equal(t, "Mains", cat.Name().String())
		assert.Equal(t, "mains", cat.Slug())
		assert.EqualValues(t, 7, cat.DisplayOrder())
	})

	t.Run("missing category maps to not found", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.CommandReadsFake.Category = nil

		_, err := uc.UpdateCategory(context.Background(), uuid.New(), reqdto.UpdateCategoryRequest{})
		require.ErrorIs(t, err, commands.ErrCategoryNotFound)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("refuses to delete a category with items", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.CommandReadsFake.Category = &shared.CategorySnapshot{
			ID:        uuid.New(),
			Name:      "Mains",
			Slug:      "mains",
			ItemCount: 3,
		}

		err := uc.DeleteCategory(context.Background(), uuid.New())

		require.ErrorIs(t, err, commands.ErrCategoryInUse)
		assert.Empty(t, uow.Tx.CategoryRepo.Deleted)
	})

	t.Run("deletes an empty category", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.CommandReadsFake.Category = &shared.CategorySnapshot{
			ID:   uuid.New(),
			Name: "Seasonal",
			Slug: "seasonal",
		}

		require.NoError(t, uc.DeleteCategory(context.Background(), uuid.New()))
		require.Len(t, uow.Tx.CategoryRepo.Deleted, 1)
	})

	t.Run("missing category maps to not found", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.CommandReadsFake.Category = nil

		err := uc.DeleteCategory(context.Background(), uuid.New())
		require.ErrorIs(t, err, commands.ErrCategoryNotFound)
	})
}

func TestCreateMenuItem(t *testing.T) {
	t.Run("creates an available unfeatured item", func(t *testing.T) {
		uow, _, uc := newMenuFixture()

		view, err := uc.CreateItem(context.Background(), reqdto.CreateMenuItemRequest{
			CategoryID: uuid.New(),
			Name:       "Grilled Halloumi",
			PriceCents: 1250,
		})

		require.NoError(t, err)
		require.NotNil(t, view)
		require.Len(t, uow.Tx.MenuItemRepo.Created, 1)
		item := uow.Tx.MenuItemRepo.Created[0]
		assert.True(t, item.IsAvailable())
		assert.False(t, item.IsFeatured())
	})

	t.Run("unknown category maps to not found", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.MenuItemRepo.CreateErr = infra.NewRepoErr(infra.KindForeignKeyViolated, "bad category")

		_, err := uc.CreateItem(context.Background(), reqdto.CreateMenuItemRequest{
			CategoryID: uuid.New(),
			Name:       "Grilled Halloumi",
			PriceCents: 1250,
		})
		require.ErrorIs(t, err, commands.ErrCategoryNotFound)
	})

	t.Run("negative price fails validation", func(t *testing.T) {
		_, _, uc := newMenuFixture()

		_, err := uc.CreateItem(context.Background(), reqdto.CreateMenuItemRequest{
			CategoryID: uuid.New(),
			Name:       "Grilled Halloumi",
			PriceCents: -1,
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestUpdateMenuItem(t *testing.T) {
	t.Run("patches only the provided fields", func(t *testing.T) {
		uow, q, uc := newMenuFixture()
		q.Item.CategoryID = uuid.New()

		featured := true
		_, err := uc.UpdateItem(context.Background(), uuid.New(), reqdto.UpdateMenuItemRequest{
			IsFeatured: &featured,
		})

		require.NoError(t, err)
		require.Len(t, uow.Tx.MenuItemRepo.Updated, 1)
		item := uow.Tx.MenuItemRepo.Updated[0]
		assert.True(t, item.IsFeatured())
		assert.True(t, item.IsAvailable())
		assert.Equal(t, "Grilled Halloumi", item.Name().String())
		assert.EqualValues(t, 1250, item.Price().Value())
	})

	t.Run("missing item maps to not found", func(t *testing.T) {
		_, q, uc := newMenuFixture()
		q.Item = nil

		_, err := uc.UpdateItem(context.Background(), uuid.New(), reqdto.UpdateMenuItemRequest{})
		require.ErrorIs(t, err, commands.ErrMenuItemNotFound)
	})
}

func TestDeleteMenuItem(t *testing.T) {
	t.Run("missing item maps to not found", func(t *testing.T) {
		uow, _, uc := newMenuFixture()
		uow.Tx.MenuItemRepo.DeleteErr = infra.NewRepoErr(infra.KindNotFound, "no such item")

		err := uc.DeleteItem(context.Background(), uuid.New())
		require.ErrorIs(t, err, commands.ErrMenuItemNotFound)
	})

	t.Run("deletes an existing item", func(t *testing.T) {
		uow, _, uc := newMenuFixture()

		id := uuid.New()
		require.NoError(t, uc.DeleteItem(context.Background(), id))
		assert.Equal(t, []uuid.UUID{id}, uow.Tx.MenuItemRepo.Deleted)
	})
}
