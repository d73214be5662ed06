//go:build unit || e2e

package builder

import (
	"time"

	domreservation "restaurant-api/internal/domain/reservation"
	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/pkg/clock"
)

type ReservationBuilder struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Date            string
	Time            string
	PartySize       int
	SpecialRequests string
	Now             time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		GuestName:       "Jamie Rivera",
		GuestEmail:      "jamie@example.com",
		GuestPhone:      "555-010-0199",
		Date:            "2026-06-15",
		Time:            "19:00",
		PartySize:       2,
		SpecialRequests: "",
		Now:             time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildCreateRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:            b.GuestName,
		Email:           b.GuestEmail,
		Phone:           b.GuestPhone,
		Date:            b.Date,
		Time:            b.Time,
		PartySize:       b.PartySize,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	contact, err := domreservation.NewGuestContact(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	slot, err := domreservation.NewSlot(b.Date, b.Time)
	if err != nil {
		return nil, err
	}
	partySize, err := domreservation.NewPartySize(b.PartySize)
	if err != nil {
		return nil, err
	}
	requests, err := domreservation.NewSpecialRequests(b.SpecialRequests)
	if err != nil {
		return nil, err
	}

	svc := domreservation.Services{Clock: clock.NewMockClock(b.Now)}
	return domreservation.NewReservation(svc, contact, slot, partySize, requests)
}
