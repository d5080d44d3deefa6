package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/techstore/storefront-api/internal/core/domain"
	"github.com/techstore/storefront-api/internal/core/ports"
)

// SettingsService serves and patches the site settings singleton.
type SettingsService struct {
	repo   ports.SettingsRepository
	logger zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger}
}

// Get returns the stored settings, falling back to defaults before the first
// save.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update overwrites only the supplied fields and persists the result.
func (s *SettingsService) Update(ctx context.Context, input ports.UpdateSettingsInput) (*domain.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.SiteName != nil {
		settings.SiteName = *input.SiteName
	}
	if input.SiteDescription != nil {
		settings.SiteDescription = *input.SiteDescription
	}
	if input.ContactEmail != nil {
		settings.ContactEmail = *input.ContactEmail
	}
	if input.EnableRegistration != nil {
		settings.EnableRegistration = *input.EnableRegistration
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info().Str("site_name", settings.SiteName).Msg("settings updated")
	return settings, nil
}
