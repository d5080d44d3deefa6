package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/techstore/storefront-api/internal/core/domain"
)

func TestStatsService_Dashboard_Totals(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "alice@example.com", "pass123", domain.StatusActive)
	seedUser(t, users, "bob@example.com", "pass123", domain.StatusActive)

	orders := &stubOrderRepo{orders: []*domain.Order{
		{ID: "o1", Total: 199.99, CreatedAt: time.Now()},
		{ID: "o2", Total: 50.01, CreatedAt: time.Now()},
	}}
	products := &stubProductRepo{count: 7}

	svc := NewStatsService(users, products, orders, nil, zerolog.Nop())

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.TotalUsers != 2 {
		t.Fatalf("expected 2 users, got %d", stats.TotalUsers)
	}
	if stats.TotalProducts != 7 {
		t.Fatalf("expected 7 products, got %d", stats.TotalProducts)
	}
	if stats.TotalOrders != 2 {
		t.Fatalf("expected 2 orders, got %d", stats.TotalOrders)
	}
	if stats.TotalRevenue != 250.00 {
		t.Fatalf("expected revenue 250.00, got %v", stats.TotalRevenue)
	}
}

func TestStatsService_ChartData_BucketsByMonthOldestFirst(t *testing.T) {
	// Fixed clock: mid-June. The window covers Jan..Jun.
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	users := newStubUserRepo()
	orders := &stubOrderRepo{orders: []*domain.Order{
		{ID: "o1", Total: 100, CreatedAt: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "o2", Total: 40, CreatedAt: time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "o3", Total: 25, CreatedAt: time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "o4", Total: 60, CreatedAt: time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)},
	}}

	svc := NewStatsService(users, &stubProductRepo{}, orders, nil, zerolog.Nop())
	svc.now = func() time.Time { return now }

	data, err := svc.ChartData(context.Background())
	if err != nil {
		t.Fatalf("ChartData returned error: %v", err)
	}

	if len(data.Revenue) != 6 || len(data.Users) != 6 {
		t.Fatalf("expected 6 buckets, got %d/%d", len(data.Revenue), len(data.Users))
	}

	wantLabels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	wantValues := []float64{60, 0, 0, 25, 0, 140}
	for i, p := range data.Revenue {
		if p.Month != wantLabels[i] {
			t.Fatalf("bucket %d: expected label %q, got %q", i, wantLabels[i], p.Month)
		}
		if p.Value != wantValues[i] {
			t.Fatalf("bucket %d: expected revenue %v, got %v", i, wantValues[i], p.Value)
		}
	}
}

func TestStatsService_ChartData_CountsSignups(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	users := newStubUserRepo()
	for i, created := range []time.Time{
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
	} {
		u := seedUser(t, users, string(rune('a'+i))+"@example.com", "pass123", domain.StatusActive)
		users.users[u.ID].CreatedAt = created
	}

	svc := NewStatsService(users, &stubProductRepo{}, &stubOrderRepo{}, nil, zerolog.Nop())
	svc.now = func() time.Time { return now }

	data, err := svc.ChartData(context.Background())
	if err != nil {
		t.Fatalf("ChartData returned error: %v", err)
	}

	// Window oldest-first: Oct, Nov, Dec, Jan, Feb, Mar.
	if data.Users[2].Month != "Dec" || data.Users[2].Value != 1 {
		t.Fatalf("expected 1 December signup, got %+v", data.Users[2])
	}
	if data.Users[5].Month != "Mar" || data.Users[5].Value != 2 {
		t.Fatalf("expected 2 March signups, got %+v", data.Users[5])
	}
}
