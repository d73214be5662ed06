//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, "2026-06-15", actual.Slot().DateString())
		assert.Equal(t, "19:00", actual.Slot().TimeString())
		assert.Equal(t, 2, actual.PartySize().Value())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("slot validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "malformed date",
				mutate: func(b *builder.ReservationBuilder) { b.Date = "15/06/2026" },
				errIs:  reservation.ErrInvalidSlotFormat,
			},
			{
				name:   "malformed time",
				mutate: func(b *builder.ReservationBuilder) { b.Time = "7pm" },
				errIs:  reservation.ErrInvalidSlotFormat,
			},
			{
				name:   "past date",
				mutate: func(b *builder.ReservationBuilder) { b.Date = "2026-05-31" },
				errIs:  reservation.ErrPastDate,
			},
			{
				name: "earlier time on the current date",
				mutate: func(b *builder.ReservationBuilder) {
					b.Date = "2026-06-01"
					b.Time = "11:00"
				},
				errIs: reservation.ErrPastTime,
			},
			{
				name: "later time on the current date",
				mutate: func(b *builder.ReservationBuilder) {
					b.Date = "2026-06-01"
					b.Time = "19:00"
				},
			},
			{
				name:   "future date with any time",
				mutate: func(b *builder.ReservationBuilder) { b.Time = "00:00" },
			},
		})
	})

	t.Run("party size validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum party size",
				mutate: func(b *builder.ReservationBuilder) { b.PartySize = 1 },
			},
			{
				name:   "maximum party size",
				mutate: func(b *builder.ReservationBuilder) { b.PartySize = 20 },
			},
			{
				name:   "zero party size",
				mutate: func(b *builder.ReservationBuilder) { b.PartySize = 0 },
				errIs:  reservation.ErrInvalidPartySize,
			},
			{
				name:   "oversized party",
				mutate: func(b *builder.ReservationBuilder) { b.PartySize = 21 },
				errIs:  reservation.ErrInvalidPartySize,
			},
		})
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character name",
				mutate: func(b *builder.ReservationBuilder) { b.GuestName = "J" },
				errIs:  reservation.ErrInvalidGuestName,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.ReservationBuilder) { b.GuestEmail = "not-an-email" },
				errIs:  reservation.ErrInvalidGuestEmail,
			},
			{
				name:   "short phone",
				mutate: func(b *builder.ReservationBuilder) { b.GuestPhone = "12345" },
				errIs:  reservation.ErrInvalidGuestPhone,
			},
		})
	})

	t.Run("special requests validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "maximum length",
				mutate: func(b *builder.ReservationBuilder) {
					long := make([]byte, reservation.MaxSpecialRequestsLength)
					for i := range long {
						long[i] = 'a'
					}
					b.SpecialRequests = string(long)
				},
			},
			{
				name: "over maximum length",
				mutate: func(b *builder.ReservationBuilder) {
					long := make([]byte, reservation.MaxSpecialRequestsLength+1)
					for i := range long {
						long[i] = 'a'
					}
					b.SpecialRequests = string(long)
				},
				errIs: reservation.ErrSpecialRequestsTooLong,
			},
		})
	})
}

func TestReservationTransitions(t *testing.T) {
	now := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		from reservation.Status
		to   reservation.Status
		ok   bool
	}{
		{"pending to confirmed", reservation.StatusPending, reservation.StatusConfirmed, true},
		{"pending to cancelled", reservation.StatusPending, reservation.StatusCancelled, true},
		{"confirmed to cancelled", reservation.StatusConfirmed, reservation.StatusCancelled, true},
		{"confirmed to pending", reservation.StatusConfirmed, reservation.StatusPending, true},
		{"cancelled to confirmed", reservation.StatusCancelled, reservation.StatusConfirmed, true},
		{"confirmed to confirmed", reservation.StatusConfirmed, reservation.StatusConfirmed, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			seeded := reservation.ReconstructReservation(
				r.ID(), r.Contact(), r.Slot(), r.PartySize(), r.SpecialRequests(),
				c.from, r.CreatedAt(), r.UpdatedAt(),
			)

			err = seeded.TransitionTo(c.to, now)
			if c.ok {
				require.NoError(t, err)
				assert.Equal(t, c.to, seeded.Status())
				assert.Equal(t, now, seeded.UpdatedAt())
			} else {
				require.ErrorIs(t, err, reservation.ErrTransitionNotAllowed)
				assert.Equal(t, c.from, seeded.Status())
			}
		})
	}
}

func TestStatusCountsAgainstCapacity(t *testing.T) {
	assert.True(t, reservation.StatusPending.CountsAgainstCapacity())
	assert.True(t, reservation.StatusConfirmed.CountsAgainstCapacity())
	assert.False(t, reservation.StatusCancelled.CountsAgainstCapacity())
}

func TestCapacityCountingStatuses(t *testing.T) {
	// The occupancy queries bind this list, so it must track the predicate.
	assert.Equal(t, []string{"pending", "confirmed"}, reservation.CapacityCountingStatuses())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
