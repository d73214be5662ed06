package commands

import "context"

type ReservationNotification struct {
	GuestName  string
	GuestEmail string
	Date       string
	Time       string
	PartySize  int
}

type ContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// Notifier delivers guest-facing email. Failures are logged and never fail
// the write that triggered them.
type Notifier interface {
	SendReservationAcknowledgement(ctx context.Context, n ReservationNotification) error
	SendReservationConfirmation(ctx context.Context, n ReservationNotification) error
	SendContactNotification(ctx context.Context, n ContactNotification) error
}
