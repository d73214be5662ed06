package commands

import (
	"context"

	"restaurant-api/internal/domain/menu"
	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound  = errs.New("category not found")
	ErrCategoryInUse     = errs.New("category still has menu items")
	ErrDuplicateCategory = errs.New("category already exists")
	ErrMenuItemNotFound  = errs.New("menu item not found")
)

type MenuCommands interface {
	CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateItem(ctx context.Context, req reqdto.CreateMenuItemRequest) (*queries.MenuItemView, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateMenuItemRequest) (*queries.MenuItemView, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type menuUseCaseImpl struct {
	uow         shared.UnitOfWork
	menuQueries queries.MenuQueries
	clock       clock.Clock
}

func NewMenuUseCase(uow shared.UnitOfWork, menuQueries queries.MenuQueries, clk clock.Clock) MenuCommands {
	return &menuUseCaseImpl{
		uow:         uow,
		menuQueries: menuQueries,
		clock:       clk,
	}
}

func (m *menuUseCaseImpl) CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error) {
	name, err := menu.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	desc, err := menu.NewDescription(req.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	cat := menu.NewCategory(name, desc, req.DisplayOrder, m.clock.Now())

	var id uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Categories().Create(ctx, tx.DB(), cat)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateCategory)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.categoryByID(ctx, id)
}

func (m *menuUseCaseImpl) UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error) {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CategoryByID(ctx, id)
		if err != nil {
			return mapCategoryRepoErr(err)
		}

		name, err := menu.NewName(patch.Coalesce(req.Name, snap.Name))
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		desc, err := menu.NewDescription(patch.Coalesce(req.Description, snap.Description))
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		now := m.clock.Now()
		cat := menu.ReconstructCategory(
			snap.ID,
			name,
			snap.Slug,
			desc,
			patch.Coalesce(req.DisplayOrder, snap.DisplayOrder),
			snap.CreatedAt,
			now,
		)
		if req.Name != nil {
			cat.Rename(name, now)
		}

		if err := tx.Categories().Update(ctx, tx.DB(), cat); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateCategory)
			}
			return mapCategoryRepoErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.categoryByID(ctx, id)
}

// DeleteCategory refuses to orphan menu items; the category must be empty.
func (m *menuUseCaseImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CategoryByID(ctx, id)
		if err != nil {
			return mapCategoryRepoErr(err)
		}
		if snap.ItemCount > 0 {
			return ErrCategoryInUse
		}

		if err := tx.Categories().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrCategoryInUse)
			}
			return mapCategoryRepoErr(err)
		}
		return nil
	})
}

func (m *menuUseCaseImpl) CreateItem(ctx context.Context, req reqdto.CreateMenuItemRequest) (*queries.MenuItemView, error) {
	name, err := menu.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	desc, err := menu.NewDescription(req.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	price, err := menu.NewPriceCents(req.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	item := menu.NewItem(req.CategoryID, name, desc, price, req.ImageURL, m.clock.Now())

	var id uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.MenuItems().Create(ctx, tx.DB(), item)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrCategoryNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.menuQueries.GetItem(ctx, id)
}

func (m *menuUseCaseImpl) UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateMenuItemRequest) (*queries.MenuItemView, error) {
	current, err := m.menuQueries.GetItem(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrMenuItemNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	name, err := menu.NewName(patch.Coalesce(req.Name, current.Name))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	desc, err := menu.NewDescription(patch.Coalesce(req.Description, current.Description))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	price, err := menu.NewPriceCents(patch.Coalesce(req.PriceCents, current.PriceCents))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	imageURL := current.ImageURL
	if req.ImageURL != nil {
		imageURL = req.ImageURL
	}

	item := menu.ReconstructItem(
		id,
		patch.Coalesce(req.CategoryID, current.CategoryID),
		name,
		desc,
		price,
		imageURL,
		patch.Coalesce(req.IsAvailable, current.IsAvailable),
		patch.Coalesce(req.IsFeatured, current.IsFeatured),
		current.CreatedAt,
		m.clock.Now(),
	)

	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.MenuItems().Update(ctx, tx.DB(), item); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMenuItemNotFound)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrCategoryNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.menuQueries.GetItem(ctx, id)
}

func (m *menuUseCaseImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.MenuItems().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMenuItemNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (m *menuUseCaseImpl) categoryByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	cats, err := m.menuQueries.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, cat := range cats {
		if cat.ID == id {
			return cat, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func mapCategoryRepoErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrCategoryNotFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
