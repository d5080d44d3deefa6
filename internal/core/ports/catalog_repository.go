package ports

import (
	"context"
	"time"

	"github.com/techstore/storefront-api/internal/core/domain"
)

// ProductRepository exposes the catalog reads the admin dashboard needs.
type ProductRepository interface {
	Count(ctx context.Context) (int64, error)
}

// OrderRepository exposes order reads for revenue aggregation.
type OrderRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]*domain.Order, error)
}
