//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageFixture() (*fakes.UnitOfWork, *fakes.Notifier, commands.MessageCommands) {
	uow := fakes.NewUnitOfWork()
	q := &fakes.MessageQueries{
		View: &queries.MessageView{
			Name:    "Robin",
			Email:   "robin@example.com",
			Subject: "Private dining",
		},
	}
	notifier := &fakes.Notifier{}
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return uow, notifier, commands.NewMessageUseCase(uow, q, notifier, clk)
}

func TestCreateContactMessage(t *testing.T) {
	req := reqdto.CreateContactMessageRequest{
		Name:    "Robin",
		Email:   "robin@example.com",
		Subject: "Private dining",
		Message: "Do you take bookings for groups of twelve?",
	}

	t.Run("stores the message and notifies staff", func(t *testing.T) {
		uow, notifier, uc := newMessageFixture()

		view, err := uc.Create(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, view)
		require.Len(t, uow.Tx.MessageRepo.Created, 1)
		require.Len(t, notifier.ContactNotes, 1)
		assert.Equal(t, "Private dining", notifier.ContactNotes[0].Subject)
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		uow, notifier, uc := newMessageFixture()
		notifier.SendErr = assert.AnError

		view, err := uc.Create(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, view)
		require.Len(t, uow.Tx.MessageRepo.Created, 1)
	})
}

func TestMarkMessageRead(t *testing.T) {
	t.Run("marks an existing message", func(t *testing.T) {
		uow, _, uc := newMessageFixture()

		id := uuid.New()
		view, err := uc.MarkRead(context.Background(), id)

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, []uuid.UUID{id}, uow.Tx.MessageRepo.Read)
	})

	t.Run("missing message maps to not found", func(t *testing.T) {
		uow, _, uc := newMessageFixture()
		uow.Tx.MessageRepo.ReadErr = infra.NewRepoErr(infra.KindNotFound, "no such message")

		_, err := uc.MarkRead(context.Background(), uuid.New())
		require.ErrorIs(t, err, commands.ErrMessageNotFound)
	})
}

func TestDeleteContactMessage(t *testing.T) {
	uow, _, uc := newMessageFixture()

	id := uuid.New()
	require.NoError(t, uc.Delete(context.Background(), id))
	assert.Equal(t, []uuid.UUID{id}, uow.Tx.MessageRepo.Deleted)
}
