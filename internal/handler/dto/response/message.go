package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromMessageView(view *queries.MessageView) *MessageResponse {
	var resp MessageResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromMessageViews(views []*queries.MessageView) []*MessageResponse {
	result := make([]*MessageResponse, len(views))
	for i, view := range views {
		result[i] = FromMessageView(view)
	}
	return result
}
