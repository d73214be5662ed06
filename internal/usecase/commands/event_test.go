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

func newEventFixture() (*fakes.UnitOfWork, *fakes.EventQueries, commands.EventCommands) {
	uow := fakes.NewUnitOfWork()
	q := &fakes.EventQueries{
		View: &queries.EventView{
			Title:     "Summer Wine Pairing",
			StartDate: "2026-07-10",
			EndDate:   "2026-07-12",
			IsActive:  true,
		},
	}
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return uow, q, commands.NewEventUseCase(uow, q, clk)
}

func TestCreateEvent(t *testing.T) {
	t.Run("creates an active event", func(t *testing.T) {
		uow, _, uc := newEventFixture()

		view, err := uc.Create(context.Background(), reqdto.CreateEventRequest{
			Title:     "Summer Wine Pairing",
			StartDate: "2026-07-10",
			EndDate:   "2026-07-12",
		})

		require.NoError(t, err)
		require.NotNil(t, view)
		require.Len(t, uow.Tx.EventRepo.Created, 1)
		assert.True(t, uow.Tx.EventRepo.Created[0].IsActive())
	})

	t.Run("end before start fails validation", func(t *testing.T) {
		uow, _, uc := newEventFixture()

		_, err := uc.Create(context.Background(), reqdto.CreateEventRequest{
			Title:     "Summer Wine Pairing",
			StartDate: "2026-07-12",
			EndDate:   "2026-07-10",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Zero(t, uow.WithinCalls)
	})

	t.Run("past start date fails validation", func(t *testing.T) {
		_, _, uc := newEventFixture()

		_, err := uc.Create(context.Background(), reqdto.CreateEventRequest{
			Title:     "Summer Wine Pairing",
			StartDate: "2026-05-01",
			EndDate:   "2026-05-02",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("malformed date fails validation", func(t *testing.T) {
		_, _, uc := newEventFixture()

		_, err := uc.Create(context.Background(), reqdto.CreateEventRequest{
			Title:     "Summer Wine Pairing",
			StartDate: "07/10/2026",
			EndDate:   "2026-07-12",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Run("deactivating keeps the existing schedule", func(t *testing.T) {
		uow, q, uc := newEventFixture()
		// Dates already in the past relative to the clock must not trip
		// the future-date check when only the flag changes.
		q.View.StartDate = "2026-05-10"
		q.View.EndDate = "2026-05-12"

		active := false
		_, err := uc.Update(context.Background(), uuid.New(), reqdto.UpdateEventRequest{
			IsActive: &active,
		})

		require.NoError(t, err)
		require.Len(t, uow.Tx.EventRepo.Updated, 1)
		assert.False(t, uow.Tx.EventRepo.Updated[0].IsActive())
	})

	t.Run("rescheduling to a past date fails validation", func(t *testing.T) {
		_, _, uc := newEventFixture()

		start := "2026-05-01"
		_, err := uc.Update(context.Background(), uuid.New(), reqdto.UpdateEventRequest{
			StartDate: &start,
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("missing event maps to not found", func(t *testing.T) {
		_, q, uc := newEventFixture()
		q.View = nil

		_, err := uc.Update(context.Background(), uuid.New(), reqdto.UpdateEventRequest{})
		require.ErrorIs(t, err, commands.ErrEventNotFound)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("deletes an existing event", func(t *testing.T) {
		uow, _, uc := newEventFixture()

		id := uuid.New()
		require.NoError(t, uc.Delete(context.Background(), id))
		assert.Equal(t, []uuid.UUID{id}, uow.Tx.EventRepo.Deleted)
	})

	t.Run("missing event maps to not found", func(t *testing.T) {
		uow, _, uc := newEventFixture()
		uow.Tx.EventRepo.DeleteErr = infra.NewRepoErr(infra.KindNotFound, "no such event")

		err := uc.Delete(context.Background(), uuid.New())
		require.ErrorIs(t, err, commands.ErrEventNotFound)
	})
}
