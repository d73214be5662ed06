package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GalleryImageResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	Caption      string    `json:"caption,omitempty"`
	DisplayOrder int32     `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromGalleryImageView(view *queries.GalleryImageView) *GalleryImageResponse {
	var resp GalleryImageResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromGalleryImageViews(views []*queries.GalleryImageView) []*GalleryImageResponse {
	result := make([]*GalleryImageResponse, len(views))
	for i, view := range views {
		result[i] = FromGalleryImageView(view)
	}
	return result
}
