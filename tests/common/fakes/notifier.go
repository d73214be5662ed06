//go:build unit

package fakes

import (
	"context"

	"restaurant-api/internal/usecase/commands"
)

// Notifier records every notification instead of sending mail.
type Notifier struct {
	Acknowledgements []commands.ReservationNotification
	Confirmations    []commands.ReservationNotification
	ContactNotes     []commands.ContactNotification
	SendErr          error
}

func (n *Notifier) SendReservationAcknowledgement(_ context.Context, note commands.ReservationNotification) error {
	if n.SendErr != nil {
		return n.SendErr
	}
	n.Acknowledgements = append(n.Acknowledgements, note)
	return nil
}

func (n *Notifier) SendReservationConfirmation(_ context.Context, note commands.ReservationNotification) error {
	if n.SendErr != nil {
		return n.SendErr
	}
	n.Confirmations = append(n.Confirmations, note)
	return nil
}

func (n *Notifier) SendContactNotification(_ context.Context, note commands.ContactNotification) error {
	if n.SendErr != nil {
		return n.SendErr
	}
	n.ContactNotes = append(n.ContactNotes, note)
	return nil
}
