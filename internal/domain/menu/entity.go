package menu

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	id           uuid.UUID
	name         Name
	slug         string
	description  Description
	displayOrder int32
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCategory(name Name, description Description, displayOrder int32, now time.Time) *Category {
	return &Category{
		id:           uuid.New(),
		name:         name,
		slug:         name.Slug(),
		description:  description,
		displayOrder: displayOrder,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructCategory(
	id uuid.UUID,
	name Name,
	slugValue string,
	description Description,
	displayOrder int32,
	createdAt time.Time,
	updatedAt time.Time,
) *Category {
	return &Category{
		id:           id,
		name:         name,
		slug:         slugValue,
		description:  description,
		displayOrder: displayOrder,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Category) ID() uuid.UUID            { return c.id }
func (c *Category) Name() Name               { return c.name }
func (c *Category) Slug() string             { return c.slug }
func (c *Category) Description() Description { return c.description }
func (c *Category) DisplayOrder() int32      { return c.displayOrder }
func (c *Category) CreatedAt() time.Time     { return c.createdAt }
func (c *Category) UpdatedAt() time.Time     { return c.updatedAt }

// Rename updates the name and re-derives the slug from it.
func (c *Category) Rename(name Name, now time.Time) {
	c.name = name
	c.slug = name.Slug()
	c.updatedAt = now
}

type Item struct {
	id          uuid.UUID
	categoryID  uuid.UUID
	name        Name
	description Description
	price       PriceCents
	imageURL    *string
	isAvailable bool
	isFeatured  bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(
	categoryID uuid.UUID,
	name Name,
	description Description,
	price PriceCents,
	imageURL *string,
	now time.Time,
) *Item {
	return &Item{
		id:          uuid.New(),
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		isAvailable: true,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructItem(
	id uuid.UUID,
	categoryID uuid.UUID,
	name Name,
	description Description,
	price PriceCents,
	imageURL *string,
	isAvailable bool,
	isFeatured bool,
	createdAt time.Time,
	updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		isAvailable: isAvailable,
		isFeatured:  isFeatured,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) ID() uuid.UUID            { return i.id }
func (i *Item) CategoryID() uuid.UUID    { return i.categoryID }
func (i *Item) Name() Name               { return i.name }
func (i *Item) Description() Description { return i.description }
func (i *Item) Price() PriceCents        { return i.price }
func (i *Item) ImageURL() *string        { return i.imageURL }
func (i *Item) IsAvailable() bool        { return i.isAvailable }
func (i *Item) IsFeatured() bool         { return i.isFeatured }
func (i *Item) CreatedAt() time.Time     { return i.createdAt }
func (i *Item) UpdatedAt() time.Time     { return i.updatedAt }
