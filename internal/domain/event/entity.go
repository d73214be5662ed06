package event

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	id          uuid.UUID
	title       Title
	description Description
	schedule    Schedule
	imageURL    *string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEvent(title Title, description Description, schedule Schedule, imageURL *string, now time.Time) *Event {
	return &Event{
		id:          uuid.New(),
		title:       title,
		description: description,
		schedule:    schedule,
		imageURL:    imageURL,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructEvent(
	id uuid.UUID,
	title Title,
	description Description,
	schedule Schedule,
	imageURL *string,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) *Event {
	return &Event{
		id:          id,
		title:       title,
		description: description,
		schedule:    schedule,
		imageURL:    imageURL,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (e *Event) ID() uuid.UUID            { return e.id }
func (e *Event) Title() Title             { return e.title }
func (e *Event) Description() Description { return e.description }
func (e *Event) Schedule() Schedule       { return e.schedule }
func (e *Event) ImageURL() *string        { return e.imageURL }
func (e *Event) IsActive() bool           { return e.isActive }
func (e *Event) CreatedAt() time.Time     { return e.createdAt }
func (e *Event) UpdatedAt() time.Time     { return e.updatedAt }
