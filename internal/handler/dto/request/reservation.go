package request

import (
	"restaurant-api/internal/domain/reservation"
)

type CreateReservationRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func (r CreateReservationRequest) ToDomain(svc reservation.Services) (*reservation.Reservation, error) {
	contact, err := reservation.NewGuestContact(r.Name, r.Email, r.Phone)
	if err != nil {
		return nil, err
	}

	slot, err := reservation.NewSlot(r.Date, r.Time)
	if err != nil {
		return nil, err
	}

	partySize, err := reservation.NewPartySize(r.PartySize)
	if err != nil {
		return nil, err
	}

	requests, err := reservation.NewSpecialRequests(r.SpecialRequests)
	if err != nil {
		return nil, err
	}

	return reservation.NewReservation(svc, contact, slot, partySize, requests)
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
