package request

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int32  `json:"display_order,omitempty"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int32  `json:"display_order,omitempty"`
}

type CreateMenuItemRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description,omitempty"`
	PriceCents  int32     `json:"price_cents" binding:"min=0"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

type UpdateMenuItemRequest struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	PriceCents  *int32     `json:"price_cents,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	IsAvailable *bool      `json:"is_available,omitempty"`
	IsFeatured  *bool      `json:"is_featured,omitempty"`
}
