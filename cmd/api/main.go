package main

import (
	"context"
	"os"

	"github.com/yigit/alumnet/internal/bootstrap"
	"github.com/yigit/alumnet/internal/pkg/logger"
	"github.com/yigit/alumnet/internal/server"
)

// @title AlumNet API
// @version 1.0
// @description API for the alumni network: directory, mentorship, job board and announcements

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token as "Bearer <token>"

func main() {
	configPath := bootstrap.DefaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	srv, err := server.NewServer(context.Background(), configPath)
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
