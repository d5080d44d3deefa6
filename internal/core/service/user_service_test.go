package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/techstore/storefront-api/internal/core/domain"
	"github.com/techstore/storefront-api/internal/core/ports"
)

func strptr(s string) *string { return &s }

func TestUserService_Create_HashesPasswordAndDefaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Bob",
		Email:    "Bob@Example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if user.Email != "bob@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.Role != domain.RoleUser || user.Status != domain.StatusActive {
		t.Fatalf("expected defaults user/active, got %s/%s", user.Role, user.Status)
	}
	if user.PasswordHash == "hunter22" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) != nil {
		t.Fatalf("stored hash does not match supplied password")
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	first, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Imposter", Email: "BOB@example.com", Password: "other",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// The existing record must be untouched.
	stored, err := svc.Get(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.Name != "Bob" {
		t.Fatalf("existing record altered: %+v", stored)
	}
}

func TestUserService_Update_PartialLeavesOtherFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "hunter22",
		Role: domain.RoleAdmin, Status: domain.StatusActive,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name: strptr("Robert"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Name != "Robert" {
		t.Fatalf("expected name Robert, got %q", updated.Name)
	}
	if updated.Email != "bob@example.com" || updated.Role != domain.RoleAdmin || updated.Status != domain.StatusActive {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.PasswordHash != created.PasswordHash {
		t.Fatalf("password hash changed without a password update")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("updated_at not refreshed")
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Password: strptr("newsecret"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordHash == created.PasswordHash {
		t.Fatalf("password hash not refreshed")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")) != nil {
		t.Fatalf("new hash does not match new password")
	}
}

func TestUserService_Update_EmailCollision(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "pass123",
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	bob, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Update(context.Background(), bob.ID, ports.UpdateUserInput{
		Email: strptr("alice@example.com"),
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on double delete, got %v", err)
	}
}

func TestUserService_Delete_Missing(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
