package ports

import (
	"context"

	"github.com/techstore/storefront-api/internal/core/domain"
)

// CreateUserInput carries a fully-specified new account. Role and Status
// default to "user"/"active" when empty.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Status   string
}

// UpdateUserInput is a partial update: nil fields are left untouched on the
// stored record.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	Status   *string
}

// UserService is the admin-facing CRUD contract over accounts.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
