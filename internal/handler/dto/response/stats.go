package response

import (
	"restaurant-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type DashboardStatsResponse struct {
	TotalReservations   int64 `json:"total_reservations"`
	PendingReservations int64 `json:"pending_reservations"`
	TodayReservations   int64 `json:"today_reservations"`
	UnreadMessages      int64 `json:"unread_messages"`
	PendingReviews      int64 `json:"pending_reviews"`
	MenuItems           int64 `json:"menu_items"`
	UpcomingEvents      int64 `json:"upcoming_events"`
}

func FromDashboardStatsView(view *queries.DashboardStatsView) *DashboardStatsResponse {
	var resp DashboardStatsResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type SiteStatsResponse struct {
	MenuItems       int64   `json:"menu_items"`
	Categories      int64   `json:"categories"`
	ApprovedReviews int64   `json:"approved_reviews"`
	AverageRating   float64 `json:"average_rating"`
	UpcomingEvents  int64   `json:"upcoming_events"`
}

func FromSiteStatsView(view *queries.SiteStatsView) *SiteStatsResponse {
	var resp SiteStatsResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
