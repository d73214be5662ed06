//go:build unit || e2e

package builder

import (
	"time"

	domreview "restaurant-api/internal/domain/review"
)

type ReviewBuilder struct {
	AuthorName string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		AuthorName: "Alex Morgan",
		Rating:     5,
		Comment:    "Wonderful food and friendly staff.",
		CreatedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	author, err := domreview.NewAuthor(b.AuthorName)
	if err != nil {
		return nil, err
	}
	rating, err := domreview.NewRating(b.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(b.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(author, rating, comment, b.CreatedAt), nil
}
