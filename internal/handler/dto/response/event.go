package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromEventView(view *queries.EventView) *EventResponse {
	var resp EventResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	result := make([]*EventResponse, len(views))
	for i, view := range views {
		result[i] = FromEventView(view)
	}
	return result
}
