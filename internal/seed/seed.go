// Package seed creates default data required for a fresh installation.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/zedhire/zedhire/internal/app/models"
	appRepos "github.com/zedhire/zedhire/internal/app/repositories"
	"github.com/zedhire/zedhire/internal/config"
	"github.com/zedhire/zedhire/internal/db"
	"github.com/zedhire/zedhire/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account if it does not exist.
// Admin accounts cannot be self-registered, so a fresh database gets one here.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(database.Pool)

	adminEmail := cfg.Admin.Email
	if adminEmail == "" {
		lgr.Warn().Msg("Admin email not configured, skipping admin seed")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		return fmt.Errorf("checking for existing admin account: %w", err)
	}
	if exists {
		return nil
	}

	lgr.Info().Str("email", adminEmail).Msg("Creating default admin account...")

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &appModels.User{
		Email:    adminEmail,
		Password: hashedPassword,
		FullName: "Platform Admin",
		Role:     appModels.RoleAdmin,
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, txErr := userRepo.CreateUserTx(ctx, tx, admin)
		return txErr
	})
	if err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	lgr.Info().Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
