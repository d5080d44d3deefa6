package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/techstore/storefront-api/internal/core/domain"
	"github.com/techstore/storefront-api/internal/core/ports"
)

func boolptr(b bool) *bool { return &b }

func TestSettingsService_Get_DefaultsBeforeFirstSave(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, zerolog.Nop())

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if settings.SiteName != "TechStore" {
		t.Fatalf("expected default site name, got %q", settings.SiteName)
	}
	if !settings.EnableRegistration {
		t.Fatalf("expected registration enabled by default")
	}
}

func TestSettingsService_Update_PatchesSuppliedFieldsOnly(t *testing.T) {
	repo := &stubSettingsRepo{stored: domain.DefaultSettings()}
	svc := NewSettingsService(repo, zerolog.Nop())

	name := "GadgetHub"
	updated, err := svc.Update(context.Background(), ports.UpdateSettingsInput{
		SiteName:           &name,
		EnableRegistration: boolptr(false),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.SiteName != "GadgetHub" {
		t.Fatalf("site name not updated: %q", updated.SiteName)
	}
	if updated.EnableRegistration {
		t.Fatalf("registration flag not updated")
	}
	if updated.ContactEmail != "contact@techstore.com" {
		t.Fatalf("untouched field changed: %q", updated.ContactEmail)
	}

	// The patch must be persisted.
	stored, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("repo Get returned error: %v", err)
	}
	if stored.SiteName != "GadgetHub" {
		t.Fatalf("patch not persisted: %q", stored.SiteName)
	}
}

func TestSettingsService_Update_FirstSavePersistsDefaultsPlusPatch(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, zerolog.Nop())

	email := "hello@gadgethub.io"
	updated, err := svc.Update(context.Background(), ports.UpdateSettingsInput{
		ContactEmail: &email,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ContactEmail != email {
		t.Fatalf("contact email not updated: %q", updated.ContactEmail)
	}
	if updated.SiteName != "TechStore" {
		t.Fatalf("defaults not carried into first save: %q", updated.SiteName)
	}
	if repo.stored == nil {
		t.Fatalf("settings not persisted")
	}
}
