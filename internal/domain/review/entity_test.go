//go:build unit

package review_test

import (
	"testing"
	"time"

	"restaurant-api/internal/domain/review"
	"restaurant-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.False(t, actual.IsApproved())
		assert.False(t, actual.IsFeatured())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 0 },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 1 },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 5 },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 6 },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum length",
				mutate: func(b *builder.ReviewBuilder) { b.Comment = "too short" },
				errIs:  review.ErrCommentTooShort,
			},
			{
				name:   "minimum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.Comment = "ten chars!" },
			},
			{
				name: "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) {
					long := make([]byte, review.MaxCommentLength)
					for i := range long {
						long[i] = 'a'
					}
					b.Comment = string(long)
				},
			},
			{
				name: "over maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					long := make([]byte, review.MaxCommentLength+1)
					for i := range long {
						long[i] = 'a'
					}
					b.Comment = string(long)
				},
				errIs: review.ErrCommentTooLong,
			},
			{
				name:   "whitespace only comment",
				mutate: func(b *builder.ReviewBuilder) { b.Comment = "                " },
				errIs:  review.ErrCommentTooShort,
			},
		})
	})

	t.Run("author validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character author",
				mutate: func(b *builder.ReviewBuilder) { b.AuthorName = "A" },
				errIs:  review.ErrInvalidAuthor,
			},
			{
				name:   "two character author",
				mutate: func(b *builder.ReviewBuilder) { b.AuthorName = "Al" },
			},
		})
	})
}

func TestReviewModeration(t *testing.T) {
	r, err := builder.NewReviewBuilder().BuildDomain()
	require.NoError(t, err)

	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	r.Approve(now)
	assert.True(t, r.IsApproved())
	assert.Equal(t, now, r.UpdatedAt())

	later := now.Add(time.Hour)
	r.SetFeatured(true, later)
	assert.True(t, r.IsFeatured())
	assert.Equal(t, later, r.UpdatedAt())

	r.SetFeatured(false, later.Add(time.Hour))
	assert.False(t, r.IsFeatured())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
