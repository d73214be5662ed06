package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type ReservationSnapshot struct {
	ID              uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Date            time.Time
	TimeMinutes     int
	PartySize       int32
	SpecialRequests string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
}

type CategorySnapshot struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Description  string
	DisplayOrder int32
	ItemCount    int64
	CreatedAt    time.Time
}
