//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"
	"restaurant-api/tests/common/builder"
	"restaurant-api/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationFixture() (*fakes.UnitOfWork, *fakes.ReservationQueries, *fakes.Notifier, commands.ReservationCommands) {
	uow := fakes.NewUnitOfWork()
	q := &fakes.ReservationQueries{
		View: &queries.ReservationView{
			GuestName: "Jamie Rivera",
			Date:      "2026-06-15",
			Time:      "19:00",
			PartySize: 2,
			Status:    "pending",
		},
	}
	notifier := &fakes.Notifier{}
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	uc := commands.NewReservationUseCase(uow, q, notifier, clk)
	return uow, q, notifier, uc
}

func TestCreateReservation(t *testing.T) {
	t.Run("books the slot when capacity remains", func(t *testing.T) {
		uow, _, notifier, uc := newReservationFixture()
		uow.Tx.CommandReadsFake.Occupancy = 4

		view, err := uc.Create(context.Background(), builder.NewReservationBuilder().BuildCreateRequest())

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, 1, uow.SerializableCalls, "capacity check and insert must share a serializable transaction")
		require.Len(t, uow.Tx.ReservationRepo.Created, 1)
		assert.Equal(t, reservation.StatusPending, uow.Tx.ReservationRepo.Created[0].Status())
		require.Len(t, notifier.Acknowledgements, 1)
		assert.Equal(t, "jamie@example.com", notifier.Acknowledgements[0].GuestEmail)
	})

	t.Run("rejects the booking when the slot is full", func(t *testing.T) {
		uow, _, notifier, uc := newReservationFixture()
		uow.Tx.CommandReadsFake.Occupancy = 5

		_, err := uc.Create(context.Background(), builder.NewReservationBuilder().BuildCreateRequest())

		require.ErrorIs(t, err, commands.ErrSlotFull)
		assert.Empty(t, uow.Tx.ReservationRepo.Created)
		assert.Empty(t, notifier.Acknowledgements)
	})

	t.Run("rejects past dates before touching storage", func(t *testing.T) {
		uow, _, _, uc := newReservationFixture()

		req := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Date = "2026-05-20" }).
			BuildCreateRequest()
		_, err := uc.Create(context.Background(), req)

		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Zero(t, uow.SerializableCalls)
		assert.Empty(t, uow.Tx.ReservationRepo.Created)
	})

	t.Run("rejects a party size above the maximum", func(t *testing.T) {
		_, _, _, uc := newReservationFixture()

		req := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.PartySize = 21 }).
			BuildCreateRequest()
		_, err := uc.Create(context.Background(), req)

		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("acknowledgement failure does not fail the booking", func(t *testing.T) {
		uow, _, notifier, uc := newReservationFixture()
		uow.Tx.CommandReadsFake.Occupancy = 0
		notifier.SendErr = assert.AnError

		view, err := uc.Create(context.Background(), builder.NewReservationBuilder().BuildCreateRequest())

		require.NoError(t, err)
		require.NotNil(t, view)
		require.Len(t, uow.Tx.ReservationRepo.Created, 1)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	snapshot := func(status string) *shared.ReservationSnapshot {
		return &shared.ReservationSnapshot{
			ID:          uuid.New(),
			GuestName:   "Jamie Rivera",
			GuestEmail:  "jamie@example.com",
			GuestPhone:  "555-010-0199",
			Date:        time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			TimeMinutes: 19 * 60,
			PartySize:   2,
			Status:      status,
		}
	}

	t.Run("confirming a pending reservation sends one confirmation email", func(t *testing.T) {
		uow, _, notifier, uc := newReservationFixture()
		uow.Tx.CommandReadsFake.Reservation = snapshot("pending")

		_, err := uc.UpdateStatus(context.Background(), uuid.New(), "confirmed")

		require.NoError(t, err)
		require.Len(t, uow.Tx.ReservationRepo.StatusUpdates, 1)
		assert.Equal(t, reservation.StatusConfirmed, uow.Tx.ReservationRepo.StatusUpdates[0])
		require.Len(t, notifier.Confirmations, 1)
		assert.Equal(t, "jamie@example.com", notifier.Confirmations[0].GuestEmail)
		assert.Equal(t, "19:00", notifier.Confirmations[0].Time)
	})

	t.Run("re-confirming an already confirmed reservation sends no email", func(t *testing.T) {
		uow, _, notifier, uc := newReservationFixture()
		uow.Tx.CommandReadsFake.Reservation = snapshot("confirmed")

		_, err := uc.UpdateStatus(context.Background(), uuid.New(), "confirmed")

		require.NoError(t, err)
		require.Len(t, uow.Tx.ReservationRepo.StatusUpdates, 1)
		assert.Empty(t, notifier.Confirmations)
	})

	t.Run("cancelling sends no email", func(t *testing.T) {
		uow, _, notifier, uc := newReservationFixture()
		uow.Tx.CommandReadsFake.Reservation = snapshot("confirmed")

		_, err := uc.UpdateStatus(context.Background(), uuid.New(), "cancelled")

		require.NoError(t, err)
		assert.Empty(t, notifier.Confirmations)
	})

	t.Run("reinstating a cancelled reservation is allowed", func(t *testing.T) {
		uow, _, notifier, uc := newReservationFixture()
		uow.Tx.CommandReadsFake.Reservation = snapshot("cancelled")

		_, err := uc.UpdateStatus(context.Background(), uuid.New(), "confirmed")

		require.NoError(t, err)
		require.Len(t, uow.Tx.ReservationRepo.StatusUpdates, 1)
		require.Len(t, notifier.Confirmations, 1)
	})

	t.Run("unknown status is rejected without a transaction", func(t *testing.T) {
		uow, _, _, uc := newReservationFixture()

		_, err := uc.UpdateStatus(context.Background(), uuid.New(), "archived")

		require.ErrorIs(t, err, commands.ErrInvalidStatus)
		assert.Zero(t, uow.WithinCalls)
	})

	t.Run("missing reservation maps to not found", func(t *testing.T) {
		uow, _, _, uc := newReservationFixture()
		uow.Tx.CommandReadsFake.Reservation = nil

		_, err := uc.UpdateStatus(context.Background(), uuid.New(), "confirmed")

		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestDeleteReservation(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		uow, _, _, uc := newReservationFixture()
		id := uuid.New()

		require.NoError(t, uc.Delete(context.Background(), id))
		require.Len(t, uow.Tx.ReservationRepo.Deleted, 1)
		assert.Equal(t, id, uow.Tx.ReservationRepo.Deleted[0])
	})
}
