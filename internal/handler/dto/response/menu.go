package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int32     `json:"display_order"`
	ItemCount    int64     `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuItemResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	PriceCents   int32     `json:"price_cents"`
	ImageURL     *string   `json:"image_url,omitempty"`
	IsAvailable  bool      `json:"is_available"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuSectionResponse struct {
	Category CategoryResponse    `json:"category"`
	Items    []*MenuItemResponse `json:"items"`
}

func FromCategoryView(view *queries.CategoryView) *CategoryResponse {
	var resp CategoryResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCategoryViews(views []*queries.CategoryView) []*CategoryResponse {
	result := make([]*CategoryResponse, len(views))
	for i, view := range views {
		result[i] = FromCategoryView(view)
	}
	return result
}

func FromMenuItemView(view *queries.MenuItemView) *MenuItemResponse {
	var resp MenuItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromMenuItemViews(views []*queries.MenuItemView) []*MenuItemResponse {
	result := make([]*MenuItemResponse, len(views))
	for i, view := range views {
		result[i] = FromMenuItemView(view)
	}
	return result
}

func FromMenuSectionView(view *queries.MenuSectionView) *MenuSectionResponse {
	return &MenuSectionResponse{
		Category: *FromCategoryView(&view.Category),
		Items:    FromMenuItemViews(view.Items),
	}
}

func FromMenuSectionViews(views []*queries.MenuSectionView) []*MenuSectionResponse {
	result := make([]*MenuSectionResponse, len(views))
	for i, view := range views {
		result[i] = FromMenuSectionView(view)
	}
	return result
}
