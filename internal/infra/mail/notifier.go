package mail

import (
	"context"
	"fmt"

	"restaurant-api/internal/pkg/config"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/commands"
)

// Notifier renders and sends the restaurant's transactional email.
type Notifier struct {
	sender     Sender
	restaurant config.RestaurantConfig
}

func NewNotifier(sender Sender, restaurant config.RestaurantConfig) *Notifier {
	return &Notifier{sender: sender, restaurant: restaurant}
}

func (n *Notifier) SendReservationAcknowledgement(_ context.Context, note commands.ReservationNotification) error {
	subject := fmt.Sprintf("Reservation request received - %s", n.restaurant.Name)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"We have received your reservation request:\n\n"+
			"Date: %s\nTime: %s\nParty size: %d\n\n"+
			"We will confirm your table shortly. If you need to make changes,\n"+
			"please call us at %s.\n\n"+
			"Thank you,\n%s",
		note.GuestName, note.Date, note.Time, note.PartySize,
		n.restaurant.Phone, n.restaurant.Name,
	)

	if err := n.sender.Send(note.GuestEmail, subject, body); err != nil {
		return errs.Wrap(err, "failed to send reservation acknowledgement")
	}
	return nil
}

func (n *Notifier) SendReservationConfirmation(_ context.Context, note commands.ReservationNotification) error {
	subject := fmt.Sprintf("Reservation confirmed - %s", n.restaurant.Name)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your reservation is confirmed:\n\n"+
			"Date: %s\nTime: %s\nParty size: %d\n\n"+
			"We look forward to welcoming you. If your plans change,\n"+
			"please call us at %s.\n\n"+
			"Thank you,\n%s",
		note.GuestName, note.Date, note.Time, note.PartySize,
		n.restaurant.Phone, n.restaurant.Name,
	)

	if err := n.sender.Send(note.GuestEmail, subject, body); err != nil {
		return errs.Wrap(err, "failed to send reservation confirmation")
	}
	return nil
}

func (n *Notifier) SendContactNotification(_ context.Context, note commands.ContactNotification) error {
	subject := fmt.Sprintf("New contact message: %s", note.Subject)
	body := fmt.Sprintf(
		"From: %s <%s>\nPhone: %s\n\n%s",
		note.Name, note.Email, note.Phone, note.Body,
	)

	if err := n.sender.Send(n.restaurant.Email, subject, body); err != nil {
		return errs.Wrap(err, "failed to send contact notification")
	}
	return nil
}
