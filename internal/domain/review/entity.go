package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is a visitor-submitted rating. Submissions start unapproved and
// only show up publicly once staff approve them.
type Review struct {
	id         uuid.UUID
	author     Author
	rating     Rating
	comment    Comment
	isApproved bool
	isFeatured bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(author Author, rating Rating, comment Comment, now time.Time) *Review {
	return &Review{
		id:        uuid.New(),
		author:    author,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructReview(
	id uuid.UUID,
	author Author,
	rating Rating,
	comment Comment,
	isApproved bool,
	isFeatured bool,
	createdAt time.Time,
	updatedAt time.Time,
) *Review {
	return &Review{
		id:         id,
		author:     author,
		rating:     rating,
		comment:    comment,
		isApproved: isApproved,
		isFeatured: isFeatured,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) Author() Author       { return r.author }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) IsApproved() bool     { return r.isApproved }
func (r *Review) IsFeatured() bool     { return r.isFeatured }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

func (r *Review) Approve(now time.Time) {
	r.isApproved = true
	r.updatedAt = now
}

func (r *Review) SetFeatured(featured bool, now time.Time) {
	r.isFeatured = featured
	r.updatedAt = now
}
