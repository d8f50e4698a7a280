// Command seed bootstraps the one-time admin account. It is idempotent:
// when the admin email already exists nothing is written.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/infrastructure/config"
	mongodb "github.com/lifesource/lifesource-api/internal/infrastructure/db/mongo"
	"github.com/lifesource/lifesource-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Admin.Password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD is required")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	email := domain.NormalizeEmail(cfg.Admin.Email)

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin already exists")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	admin, err := repo.Create(ctx, &domain.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent seed may have won the unique-index race.
		if errors.Is(err, domain.ErrEmailTaken) {
			log.Info().Str("email", email).Msg("admin already exists")
			return
		}
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("email", admin.Email).Str("id", admin.ID).Msg("seeded admin")
}
