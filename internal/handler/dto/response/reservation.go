package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
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

type AvailabilityResponse struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	Available     bool   `json:"available"`
	OccupiedSlots int64  `json:"occupied_slots"`
	Capacity      int    `json:"capacity"`
	Message       string `json:"message,omitempty"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(views))
	for i, view := range views {
		result[i] = FromReservationView(view)
	}
	return result
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
