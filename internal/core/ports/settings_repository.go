package ports

import (
	"context"

	"github.com/techstore/storefront-api/internal/core/domain"
)

// SettingsRepository persists the single site settings document.
// Get returns domain.ErrSettingsNotFound before the first Save.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}
