package main

import (
	"os"

	"github.com/hosuracademy/academy-api/internal/pkg/logger"
	"github.com/hosuracademy/academy-api/internal/server"
)

// @title Hosur Academy API
// @version 1.0
// @description REST API behind the Hosur Academy website: students, courses, exam results, inquiries, gallery and toppers.

// @contact.name API Support
// @contact.email info@hosuracademy.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token returned by /login, sent as "Bearer <token>"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
