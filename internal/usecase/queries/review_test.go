//go:build unit

package queries_test

import (
	"context"
	"testing"

	"restaurant-api/internal/usecase/queries"
	"restaurant-api/tests/common/fakes"

	"github.com/stretchr/testify/require"
)

func TestListApprovedLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int32
	}{
		{name: "zero falls back to the default page size", limit: 0, wantLimit: 50},
		{name: "oversized request is capped", limit: 100000, wantLimit: 50},
		{name: "reasonable request passes through", limit: 10, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakes.ReviewViewRepo{}
			svc := queries.NewReviewQueries(repo)

			_, err := svc.ListApproved(context.Background(), tt.limit, 0)
			require.NoError(t, err)

			require.Len(t, repo.FindLimits, 1)
			require.Equal(t, tt.wantLimit, repo.FindLimits[0])
		})
	}
}
