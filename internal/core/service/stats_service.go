package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/techstore/storefront-api/internal/core/ports"
)

const (
	statsCacheTTL     = 30 * time.Second
	dashboardCacheKey = "stats:dashboard"
	chartCacheKey     = "stats:chart"
	chartMonths       = 6
)

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// StatsService aggregates dashboard figures over users, products and orders.
// Results are cached briefly so a dashboard poll does not re-scan orders on
// every request.
type StatsService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	orders   ports.OrderRepository
	cache    ports.StatsCache
	logger   zerolog.Logger
	now      func() time.Time
}

func NewStatsService(users ports.UserRepository, products ports.ProductRepository, orders ports.OrderRepository, cache ports.StatsCache, logger zerolog.Logger) *StatsService {
	return &StatsService{
		users:    users,
		products: products,
		orders:   orders,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// Dashboard returns the headline totals: entity counts plus the revenue sum
// across all orders.
func (s *StatsService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	var cached ports.DashboardStats
	if s.cache != nil && s.cache.Get(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}

	stats := &ports.DashboardStats{
		TotalUsers:    totalUsers,
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalRevenue:  revenue,
	}

	if s.cache != nil {
		s.cache.Set(ctx, dashboardCacheKey, stats, statsCacheTTL)
	}
	return stats, nil
}

// ChartData buckets order revenue and user signups from the last six calendar
// months by month, oldest bucket first.
func (s *StatsService) ChartData(ctx context.Context) (*ports.ChartData, error) {
	var cached ports.ChartData
	if s.cache != nil && s.cache.Get(ctx, chartCacheKey, &cached) {
		return &cached, nil
	}

	now := s.now().UTC()
	since := now.AddDate(0, -chartMonths, 0)

	orders, err := s.orders.ListCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	// revenue[0] is the current month, revenue[5] the oldest.
	var revenue, signups [chartMonths]float64
	for _, o := range orders {
		if i, ok := monthOffset(now, o.CreatedAt); ok {
			revenue[i] += o.Total
		}
	}
	for _, u := range users {
		if i, ok := monthOffset(now, u.CreatedAt); ok {
			signups[i]++
		}
	}

	data := &ports.ChartData{
		Revenue: make([]ports.MonthPoint, 0, chartMonths),
		Users:   make([]ports.MonthPoint, 0, chartMonths),
	}
	for i := chartMonths - 1; i >= 0; i-- {
		label := monthLabels[(int(now.Month())-1-i+12)%12]
		data.Revenue = append(data.Revenue, ports.MonthPoint{Month: label, Value: revenue[i]})
		data.Users = append(data.Users, ports.MonthPoint{Month: label, Value: signups[i]})
	}

	if s.cache != nil {
		s.cache.Set(ctx, chartCacheKey, data, statsCacheTTL)
	}
	return data, nil
}

// monthOffset maps a timestamp to its distance in calendar months from now
// (0 = current month). Timestamps older than the chart window report !ok.
func monthOffset(now, t time.Time) (int, bool) {
	offset := (int(now.Month()) - int(t.Month()) + 12) % 12
	if offset >= chartMonths {
		return 0, false
	}
	return offset, true
}
