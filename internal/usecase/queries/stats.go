package queries

import (
	"context"

	"restaurant-api/internal/pkg/clock"
)

type StatsQueries interface {
	Dashboard(ctx context.Context) (*DashboardStatsView, error)
	Site(ctx context.Context) (*SiteStatsView, error)
}

type StatsViewRepo interface {
	CollectDashboard(ctx context.Context, today string) (*DashboardStatsView, error)
	CollectSite(ctx context.Context, today string) (*SiteStatsView, error)
}

type statsQueriesImpl struct {
	repo  StatsViewRepo
	clock clock.Clock
}

func NewStatsQueries(repo StatsViewRepo, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{repo: repo, clock: clk}
}

func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*DashboardStatsView, error) {
	return q.repo.CollectDashboard(ctx, q.clock.Now().UTC().Format("2006-01-02"))
}

func (q *statsQueriesImpl) Site(ctx context.Context) (*SiteStatsView, error) {
	return q.repo.CollectSite(ctx, q.clock.Now().UTC().Format("2006-01-02"))
}
