package readstore

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuReadStore struct {
	db db.DBTX
}

func NewMenuReadStore(dbtx db.DBTX) *MenuReadStore {
	return &MenuReadStore{db: dbtx}
}

const categoryViewQuery = `
	SELECT c.id, c.name, c.slug, c.description, c.display_order,
	       COUNT(i.id) FILTER (WHERE i.is_available) AS item_count,
	       c.created_at, c.updated_at
	FROM menu_categories c
	LEFT JOIN menu_items i ON i.category_id = c.id`

func (r *MenuReadStore) FindCategories(ctx context.Context) ([]*queries.CategoryView, error) {
	const query = categoryViewQuery + `
		GROUP BY c.id
		ORDER BY c.display_order, c.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	result := []*queries.CategoryView{}
	for rows.Next() {
		view, err := scanCategoryView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan category row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate category rows", err)
	}

	return result, nil
}

func (r *MenuReadStore) FindCategoryBySlug(ctx context.Context, slug string) (*queries.CategoryView, error) {
	const query = categoryViewQuery + `
		WHERE c.slug = $1
		GROUP BY c.id`

	view, err := scanCategoryView(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find category by slug", err)
	}

	return view, nil
}

const menuItemViewColumns = `
	i.id, i.category_id, c.name, i.name, i.description, i.price_cents,
	i.image_url, i.is_available, i.is_featured, i.created_at, i.updated_at`

func (r *MenuReadStore) FindItemByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	const query = `
		SELECT ` + menuItemViewColumns + `
		FROM menu_items i
		JOIN menu_categories c ON c.id = i.category_id
		WHERE i.id = $1`

	view, err := scanMenuItemView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}

	return view, nil
}

func (r *MenuReadStore) FindItems(ctx context.Context, filter queries.MenuItemFilter, limit, offset int32) ([]*queries.MenuItemView, error) {
	// LIMIT NULL means no limit, used by the full-menu assembly
	query := `
		SELECT ` + menuItemViewColumns + `
		FROM menu_items i
		JOIN menu_categories c ON c.id = i.category_id
		WHERE ($1::uuid IS NULL OR i.category_id = $1)
		  AND (NOT $2::bool OR i.is_available)
		  AND (NOT $3::bool OR i.is_featured)
		ORDER BY c.display_order, i.name
		LIMIT NULLIF($4, 0) OFFSET $5`

	rows, err := r.db.Query(ctx, query,
		filter.CategoryID,
		filter.OnlyAvailable,
		filter.OnlyFeatured,
		limit,
		offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	return collectMenuItemViews(rows)
}

func (r *MenuReadStore) SearchItems(ctx context.Context, query string, limit int32) ([]*queries.MenuItemView, error) {
	const sql = `
		SELECT ` + menuItemViewColumns + `
		FROM menu_items i
		JOIN menu_categories c ON c.id = i.category_id
		WHERE i.is_available
		  AND (i.name ILIKE '%' || $1 || '%' OR i.description ILIKE '%' || $1 || '%')
		ORDER BY i.name
		LIMIT $2`

	rows, err := r.db.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search menu items", err)
	}
	defer rows.Close()

	return collectMenuItemViews(rows)
}

func collectMenuItemViews(rows pgx.Rows) ([]*queries.MenuItemView, error) {
	result := []*queries.MenuItemView{}
	for rows.Next() {
		view, err := scanMenuItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu item rows", err)
	}

	return result, nil
}

func scanCategoryView(row rowScanner) (*queries.CategoryView, error) {
	var (
		view      queries.CategoryView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Slug,
		&view.Description,
		&view.DisplayOrder,
		&view.ItemCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func scanMenuItemView(row rowScanner) (*queries.MenuItemView, error) {
	var (
		view      queries.MenuItemView
		imageURL  pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.CategoryID,
		&view.CategoryName,
		&view.Name,
		&view.Description,
		&view.PriceCents,
		&imageURL,
		&view.IsAvailable,
		&view.IsFeatured,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}
