package ports

import (
	"context"

	"github.com/techstore/storefront-api/internal/core/domain"
)

// UpdateSettingsInput is a partial patch of the settings document.
type UpdateSettingsInput struct {
	SiteName           *string
	SiteDescription    *string
	ContactEmail       *string
	EnableRegistration *bool
}

// SettingsService reads and patches the site settings singleton.
type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error)
}
