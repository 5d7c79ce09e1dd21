// Package bootstrap wires configuration, storage and services into a running application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/zedhire/zedhire/docs" // Import generated swagger docs
	appAuth "github.com/zedhire/zedhire/internal/app/auth"
	appControllers "github.com/zedhire/zedhire/internal/app/controllers"
	appMigrations "github.com/zedhire/zedhire/internal/app/migrations"
	appRepos "github.com/zedhire/zedhire/internal/app/repositories"
	appRoutes "github.com/zedhire/zedhire/internal/app/routes"
	appServices "github.com/zedhire/zedhire/internal/app/services"
	"github.com/zedhire/zedhire/internal/config"
	"github.com/zedhire/zedhire/internal/db"
	appMiddleware "github.com/zedhire/zedhire/internal/middleware"
	pkgAuth "github.com/zedhire/zedhire/internal/pkg/auth"
	"github.com/zedhire/zedhire/internal/pkg/email"
	"github.com/zedhire/zedhire/internal/pkg/filestorage"
	"github.com/zedhire/zedhire/internal/pkg/helpers"
	"github.com/zedhire/zedhire/internal/pkg/logger"
	"github.com/zedhire/zedhire/internal/pkg/notify"
	"github.com/zedhire/zedhire/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	CandidateService    appServices.CandidateService
	RecruiterService    appServices.RecruiterService
	JobService          appServices.JobService
	ApplicationService  appServices.ApplicationService
	AdminService        appServices.AdminService
	AuthController      *appControllers.AuthController
	JobController       *appControllers.JobController
	CandidateController *appControllers.CandidateController
	RecruiterController *appControllers.RecruiterController
	AdminController     *appControllers.AdminController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	AuthzService        *appAuth.AuthorizationService
	EmailService        email.EmailService
	NotifyHub           *notify.Hub
	Logger              zerolog.Logger
	FileStorage         *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	// File storage serves uploaded resumes under the static /uploads path
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadPath, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.UserRepository,
		deps.Repos.JobRepository,
		deps.Repos.ApplicationRepository,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.FromEmail,
		BaseURL:   cfg.Email.BaseURL,
	}, lgr)

	deps.NotifyHub = notify.NewHub(lgr)
	go deps.NotifyHub.Run()

	deps.AuthService = appServices.NewAuthService(
		database,
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.CandidateRepository,
		deps.Repos.RecruiterRepository,
		deps.JWTService,
		lgr,
	)

	deps.CandidateService = appServices.NewCandidateService(
		deps.Repos.CandidateRepository,
		deps.Repos.UserRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.SavedJobRepository,
		deps.FileStorage,
		lgr,
	)

	deps.RecruiterService = appServices.NewRecruiterService(
		deps.Repos.RecruiterRepository,
		deps.Repos.UserRepository,
		deps.Repos.JobRepository,
		deps.Repos.ApplicationRepository,
		lgr,
	)

	deps.JobService = appServices.NewJobService(
		deps.Repos.JobRepository,
		deps.Repos.RecruiterRepository,
		deps.Repos.UserRepository,
		deps.AuthzService,
		lgr,
	)

	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.JobRepository,
		deps.Repos.CandidateRepository,
		deps.Repos.RecruiterRepository,
		deps.Repos.SavedJobRepository,
		deps.Repos.UserRepository,
		deps.AuthzService,
		deps.NotifyHub,
		lgr,
	)

	deps.AdminService = appServices.NewAdminService(
		deps.Repos.RecruiterRepository,
		deps.Repos.UserRepository,
		deps.Repos.JobRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.TokenRepository,
		deps.EmailService,
		lgr,
	)

	startTokenCleanup(deps.Repos.TokenRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.JobController = appControllers.NewJobController(deps.JobService, deps.Logger)
	deps.CandidateController = appControllers.NewCandidateController(deps.CandidateService, deps.ApplicationService, deps.Logger)
	deps.RecruiterController = appControllers.NewRecruiterController(deps.RecruiterService, deps.ApplicationService, deps.Logger)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.JobService, deps.Logger)

	return deps, nil
}

// startTokenCleanup periodically deletes expired refresh tokens so the
// table does not grow without bound.
func startTokenCleanup(tokenRepo *appRepos.TokenRepository, lgr zerolog.Logger) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			deleted, err := tokenRepo.DeleteExpiredTokens(ctx)
			cancel()
			if err != nil {
				lgr.Warn().Err(err).Msg("Expired token cleanup failed")
				continue
			}
			if deleted > 0 {
				lgr.Info().Int64("deleted", deleted).Msg("Expired refresh tokens removed")
			}
		}
	}()
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.JobController,
		deps.CandidateController,
		deps.RecruiterController,
		deps.AdminController,
		deps.NotifyHub,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
