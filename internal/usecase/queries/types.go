package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PartySize       int32     `json:"party_size"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AvailabilityView struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	Available     bool   `json:"available"`
	OccupiedSlots int64  `json:"occupied_slots"`
	Capacity      int    `json:"capacity"`
	Message       string `json:"message,omitempty"`
}

type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int32     `json:"display_order"`
	ItemCount    int64     `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuItemView struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	PriceCents   int32     `json:"price_cents"`
	ImageURL     *string   `json:"image_url,omitempty"`
	IsAvailable  bool      `json:"is_available"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuSectionView struct {
	Category CategoryView    `json:"category"`
	Items    []*MenuItemView `json:"items"`
}

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	IsApproved bool      `json:"is_approved"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

type RatingSummaryView struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type EventView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GalleryImageView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	Caption      string    `json:"caption,omitempty"`
	DisplayOrder int32     `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type MessageView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type SiteStatsView struct {
	MenuItems       int64   `json:"menu_items"`
	Categories      int64   `json:"categories"`
	ApprovedReviews int64   `json:"approved_reviews"`
	AverageRating   float64 `json:"average_rating"`
	UpcomingEvents  int64   `json:"upcoming_events"`
}

type DashboardStatsView struct {
	TotalReservations   int64 `json:"total_reservations"`
	PendingReservations int64 `json:"pending_reservations"`
	TodayReservations   int64 `json:"today_reservations"`
	UnreadMessages      int64 `json:"unread_messages"`
	PendingReviews      int64 `json:"pending_reviews"`
	MenuItems           int64 `json:"menu_items"`
	UpcomingEvents      int64 `json:"upcoming_events"`
}

// List filters
type ReservationFilter struct {
	Date   *time.Time
	Status *string
}

type MenuItemFilter struct {
	CategoryID    *uuid.UUID
	OnlyAvailable bool
	OnlyFeatured  bool
}

type ReviewFilter struct {
	OnlyApproved bool
	OnlyFeatured bool
	OnlyPending  bool
}
