package commands

import (
	"context"
	"log/slog"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMessageNotFound = errs.New("contact message not found")

type MessageCommands interface {
	Create(ctx context.Context, req reqdto.CreateContactMessageRequest) (*queries.MessageView, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*queries.MessageView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageUseCaseImpl struct {
	uow            shared.UnitOfWork
	messageQueries queries.MessageQueries
	notifier       Notifier
	clock          clock.Clock
}

func NewMessageUseCase(
	uow shared.UnitOfWork,
	messageQueries queries.MessageQueries,
	notifier Notifier,
	clk clock.Clock,
) MessageCommands {
	return &messageUseCaseImpl{
		uow:            uow,
		messageQueries: messageQueries,
		notifier:       notifier,
		clock:          clk,
	}
}

func (m *messageUseCaseImpl) Create(ctx context.Context, req reqdto.CreateContactMessageRequest) (*queries.MessageView, error) {
	msg := &shared.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Body:      req.Message,
		CreatedAt: m.clock.Now(),
	}

	var id uuid.UUID
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Messages().Create(ctx, tx.DB(), msg)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Staff notification is best effort; the message is already stored.
	note := ContactNotification{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := m.notifier.SendContactNotification(ctx, note); err != nil {
		slog.Warn("failed to send contact notification",
			"message_id", id.String(),
			"error", err.Error())
	}

	return m.messageQueries.GetByID(ctx, id)
}

func (m *messageUseCaseImpl) MarkRead(ctx context.Context, id uuid.UUID) (*queries.MessageView, error) {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Messages().MarkRead(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMessageNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.messageQueries.GetByID(ctx, id)
}

func (m *messageUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Messages().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMessageNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
