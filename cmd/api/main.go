package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/zedhire/zedhire/internal/pkg/logger"
	"github.com/zedhire/zedhire/internal/server"
)

// @title ZedHire API
// @version 1.0
// @description API for the ZedHire job board platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://www.zedhire.app/support
// @contact.email support@zedhire.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Environment overrides come from .env when present
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
