package ports

import (
	"context"
	"time"
)

// DashboardStats are the headline totals shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers    int64   `json:"total_users"`
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// MonthPoint is one bucket of a six-month series, oldest first.
type MonthPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// ChartData holds the dashboard chart series: order revenue and new user
// signups bucketed by calendar month over the last six months.
type ChartData struct {
	Revenue []MonthPoint `json:"revenue"`
	Users   []MonthPoint `json:"users"`
}

// StatsService aggregates dashboard figures.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	ChartData(ctx context.Context) (*ChartData, error)
}

// StatsCache is a short-lived cache in front of the aggregation queries.
// Implementations must treat backend failures as misses, never as errors.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}
