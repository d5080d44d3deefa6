package ports

import (
	"context"

	"github.com/techstore/storefront-api/internal/core/domain"
)

// AuthService issues and re-validates session credentials.
type AuthService interface {
	// Login exchanges email/password for a signed session token. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials so
	// callers cannot probe which addresses are registered.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// CurrentUser re-reads the account behind an already-verified token so
	// that deactivation takes effect before the token expires.
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
}
