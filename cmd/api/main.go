package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campushare/backend/internal/pkg/logger"
	"github.com/campushare/backend/internal/server"
)

// @title CampusShare API
// @version 1.0
// @description Student resource sharing platform: class notes, books and past-year question papers

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Local .env is optional; environment variables win over config.yaml
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
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
}
