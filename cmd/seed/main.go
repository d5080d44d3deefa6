// seed creates the bootstrap admin account if it does not exist yet.
// Idempotent: running it twice leaves the store unchanged.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/techstore/storefront-api/internal/core/domain"
	"github.com/techstore/storefront-api/internal/core/ports"
	"github.com/techstore/storefront-api/internal/core/service"
	"github.com/techstore/storefront-api/internal/infrastructure/config"
	mongodb "github.com/techstore/storefront-api/internal/infrastructure/db/mongo"
	"github.com/techstore/storefront-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}

	if _, err := repo.FindByEmail(ctx, cfg.Seed.AdminEmail); err == nil {
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("admin user already exists")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	users := service.NewUserService(repo, log)
	admin, err := users.Create(ctx, ports.CreateUserInput{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Role:     domain.RoleAdmin,
		Status:   domain.StatusActive,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	log.Info().Str("user_id", admin.ID).Str("email", admin.Email).Msg("admin user created")
}
