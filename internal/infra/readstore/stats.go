package readstore

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/usecase/queries"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

// CollectDashboard gathers the back-office counters in one round trip.
func (r *StatsReadStore) CollectDashboard(ctx context.Context, today string) (*queries.DashboardStatsView, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM reservations),
			(SELECT COUNT(*) FROM reservations WHERE status = 'pending'),
			(SELECT COUNT(*) FROM reservations WHERE reservation_date = $1::date
				AND status IN ('pending', 'confirmed')),
			(SELECT COUNT(*) FROM contact_messages WHERE NOT is_read),
			(SELECT COUNT(*) FROM reviews WHERE NOT is_approved),
			(SELECT COUNT(*) FROM menu_items),
			(SELECT COUNT(*) FROM events WHERE is_active AND end_date >= $1::date)`

	var view queries.DashboardStatsView
	err := r.db.QueryRow(ctx, query, today).Scan(
		&view.TotalReservations,
		&view.PendingReservations,
		&view.TodayReservations,
		&view.UnreadMessages,
		&view.PendingReviews,
		&view.MenuItems,
		&view.UpcomingEvents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect dashboard stats", err)
	}

	return &view, nil
}

// CollectSite gathers the counters the public site widget shows.
func (r *StatsReadStore) CollectSite(ctx context.Context, today string) (*queries.SiteStatsView, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM menu_items WHERE is_available),
			(SELECT COUNT(*) FROM menu_categories),
			(SELECT COUNT(*) FROM reviews WHERE is_approved),
			(SELECT COALESCE(ROUND(AVG(rating), 2), 0) FROM reviews WHERE is_approved),
			(SELECT COUNT(*) FROM events WHERE is_active AND end_date >= $1::date)`

	var view queries.SiteStatsView
	err := r.db.QueryRow(ctx, query, today).Scan(
		&view.MenuItems,
		&view.Categories,
		&view.ApprovedReviews,
		&view.AverageRating,
		&view.UpcomingEvents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect site stats", err)
	}

	return &view, nil
}
