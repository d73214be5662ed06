package request

type CreateReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type ModerateReviewRequest struct {
	IsApproved *bool `json:"is_approved,omitempty"`
	IsFeatured *bool `json:"is_featured,omitempty"`
}
