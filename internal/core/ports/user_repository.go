package ports

import (
	"context"
	"time"

	"github.com/techstore/storefront-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Lookups by email are case-insensitive (implementations store the address
// lowercased).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]*domain.User, error)
}
