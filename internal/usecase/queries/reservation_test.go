//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/tests/common/fakes"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailability(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      string
		timeStr   string
		occupancy int64
		want      *queries.AvailabilityView
		wantErr   bool
	}{
		{
			name:      "open slot",
			date:      "2026-06-15",
			timeStr:   "19:00",
			occupancy: 2,
			want: &queries.AvailabilityView{
				Date:          "2026-06-15",
				Time:          "19:00",
				Available:     true,
				OccupiedSlots: 2,
				Capacity:      5,
			},
		},
		{
			name:      "last seat still available",
			date:      "2026-06-15",
			timeStr:   "19:00",
			occupancy: 4,
			want: &queries.AvailabilityView{
				Date:          "2026-06-15",
				Time:          "19:00",
				Available:     true,
				OccupiedSlots: 4,
				Capacity:      5,
			},
		},
		{
			name:      "fully booked",
			date:      "2026-06-15",
			timeStr:   "19:00",
			occupancy: 5,
			want: &queries.AvailabilityView{
				Date:          "2026-06-15",
				Time:          "19:00",
				Available:     false,
				OccupiedSlots: 5,
				Capacity:      5,
				Message:       "This time slot is fully booked, please choose another time",
			},
		},
		{
			name:    "past date short circuits without counting",
			date:    "2026-05-20",
			timeStr: "19:00",
			want: &queries.AvailabilityView{
				Date:     "2026-05-20",
				Time:     "19:00",
				Capacity: 5,
				Message:  "Cannot check availability for past dates",
			},
		},
		{
			name:    "malformed date",
			date:    "06/15/2026",
			timeStr: "19:00",
			wantErr: true,
		},
		{
			name:    "malformed time",
			date:    "2026-06-15",
			timeStr: "7pm",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakes.ReservationViewRepo{Occupancy: tt.occupancy}
			q := queries.NewReservationQueries(repo, clock.NewMockClock(now))

			got, err := q.CheckAvailability(context.Background(), tt.date, tt.timeStr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("availability mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
