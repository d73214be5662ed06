package repository

import (
	"context"

	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(ctx context.Context, dbtx db.DBTX, cat *menu.Category) (uuid.UUID, error) {
	const query = `
		INSERT INTO menu_categories (
			id, name, slug, description, display_order, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		cat.ID(),
		cat.Name().String(),
		cat.Slug(),
		cat.Description().String(),
		cat.DisplayOrder(),
		pgconv.TimeToPgtype(cat.CreatedAt()),
		pgconv.TimeToPgtype(cat.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}

	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, dbtx db.DBTX, cat *menu.Category) error {
	const query = `
		UPDATE menu_categories
		SET name = $2, slug = $3, description = $4, display_order = $5, updated_at = $6
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		cat.ID(),
		cat.Name().String(),
		cat.Slug(),
		cat.Description().String(),
		cat.DisplayOrder(),
		pgconv.TimeToPgtype(cat.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "category not found")
	}

	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM menu_categories WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "category not found")
	}

	return nil
}

type MenuItemRepository struct{}

func NewMenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{}
}

func (r *MenuItemRepository) Create(ctx context.Context, dbtx db.DBTX, item *menu.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO menu_items (
			id, category_id, name, description, price_cents,
			image_url, is_available, is_featured, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		item.ID(),
		item.CategoryID(),
		item.Name().String(),
		item.Description().String(),
		item.Price().Value(),
		pgconv.StringPtrToPgtype(item.ImageURL()),
		item.IsAvailable(),
		item.IsFeatured(),
		pgconv.TimeToPgtype(item.CreatedAt()),
		pgconv.TimeToPgtype(item.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create menu item", err)
	}

	return id, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, dbtx db.DBTX, item *menu.Item) error {
	const query = `
		UPDATE menu_items
		SET category_id = $2, name = $3, description = $4, price_cents = $5,
		    image_url = $6, is_available = $7, is_featured = $8, updated_at = $9
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		item.ID(),
		item.CategoryID(),
		item.Name().String(),
		item.Description().String(),
		item.Price().Value(),
		pgconv.StringPtrToPgtype(item.ImageURL()),
		item.IsAvailable(),
		item.IsFeatured(),
		pgconv.TimeToPgtype(item.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "menu item not found")
	}

	return nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "menu item not found")
	}

	return nil
}
