//go:build unit

package menu_test

import (
	"testing"
	"time"

	"restaurant-api/internal/domain/menu"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		slug  string
		errIs error
	}{
		{name: "simple name", input: "Starters", slug: "starters"},
		{name: "multi word name", input: "Chef's Specials", slug: "chef-s-specials"},
		{name: "trimmed whitespace", input: "  Desserts  ", slug: "desserts"},
		{name: "too short", input: "A", errIs: menu.ErrInvalidName},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := menu.NewName(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.slug, n.Slug())
		})
	}
}

func TestPriceCents(t *testing.T) {
	p, err := menu.NewPriceCents(1250)
	require.NoError(t, err)
	assert.Equal(t, int32(1250), p.Value())

	zero, err := menu.NewPriceCents(0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), zero.Value())

	_, err = menu.NewPriceCents(-1)
	assert.ErrorIs(t, err, menu.ErrNegativePrice)
}

func TestCategoryRename(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	name, err := menu.NewName("Main Courses")
	require.NoError(t, err)
	desc, err := menu.NewDescription("")
	require.NoError(t, err)

	c := menu.NewCategory(name, desc, 1, now)
	assert.Equal(t, "main-courses", c.Slug())

	renamed, err := menu.NewName("Mains")
	require.NoError(t, err)
	later := now.Add(time.Hour)
	c.Rename(renamed, later)

	assert.Equal(t, "Mains", c.Name().String())
	assert.Equal(t, "mains", c.Slug())
	assert.Equal(t, later, c.UpdatedAt())
}

func TestItem(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	name, err := menu.NewName("Grilled Salmon")
	require.NoError(t, err)
	desc, err := menu.NewDescription("With seasonal vegetables.")
	require.NoError(t, err)
	price, err := menu.NewPriceCents(2400)
	require.NoError(t, err)

	categoryID := uuid.New()
	item := menu.NewItem(categoryID, name, desc, price, nil, now)

	assert.NotEqual(t, uuid.Nil, item.ID())
	assert.Equal(t, categoryID, item.CategoryID())
	assert.True(t, item.IsAvailable())
	assert.False(t, item.IsFeatured())
}
