package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	IsApproved bool      `json:"is_approved"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

type RatingSummaryResponse struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

func FromReviewView(view *queries.ReviewView) *ReviewResponse {
	var resp ReviewResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, len(views))
	for i, view := range views {
		result[i] = FromReviewView(view)
	}
	return result
}

func FromRatingSummaryView(view *queries.RatingSummaryView) *RatingSummaryResponse {
	var resp RatingSummaryResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
