//go:build unit

package event_test

import (
	"testing"
	"time"

	"restaurant-api/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	now := time.Date(2026, 6, 1, 18, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "future single day", start: day(7), end: day(7)},
		{name: "future span", start: day(7), end: day(9)},
		{name: "starting today", start: now, end: day(1)},
		{name: "start in the past", start: day(-1), end: day(3), errIs: event.ErrPastEventDate},
		{name: "end before start", start: day(5), end: day(4), errIs: event.ErrEndBeforeStart},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := event.NewSchedule(c.start, c.end, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.False(t, s.StartDate().After(s.EndDate()))
		})
	}
}

func TestScheduleIsUpcoming(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	past := event.ReconstructSchedule(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
	)
	assert.False(t, past.IsUpcoming(now))

	running := event.ReconstructSchedule(
		time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
	)
	assert.True(t, running.IsUpcoming(now))

	endingToday := event.ReconstructSchedule(
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	assert.True(t, endingToday.IsUpcoming(now))
}

func TestEvent(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	title, err := event.NewTitle("Summer Wine Tasting")
	require.NoError(t, err)
	desc, err := event.NewDescription("An evening of regional wines.")
	require.NoError(t, err)
	schedule, err := event.NewSchedule(now.AddDate(0, 0, 14), now.AddDate(0, 0, 14), now)
	require.NoError(t, err)

	e := event.NewEvent(title, desc, schedule, nil, now)
	assert.True(t, e.IsActive())
	assert.Equal(t, "Summer Wine Tasting", e.Title().String())
	assert.Nil(t, e.ImageURL())

	t.Run("title validation", func(t *testing.T) {
		_, err := event.NewTitle("x")
		assert.ErrorIs(t, err, event.ErrInvalidTitle)
	})

	t.Run("description length", func(t *testing.T) {
		long := make([]byte, event.MaxDescriptionLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := event.NewDescription(string(long))
		assert.ErrorIs(t, err, event.ErrDescriptionTooLong)
	})
}
