package main

import (
	"context"
	"fmt"
	"os"

	"spendly/internal/assistant"
	"spendly/internal/config"
	"spendly/internal/database"
	"spendly/internal/logger"
	"spendly/internal/server"
)

// @title           Spendly API
// @version         1.0
// @description     Spendly keeps a local-first expense tracker in sync with a Postgres backend and answers questions about the user's spending.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a session token. Only required when AUTH_MODE=jwt.

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The connection is opened on first use so the server can start
	// (and report the problem per request) without DATABASE_URL.
	dbManager := database.NewManager(database.NewConfig(appConfig))
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()
	if appConfig.DatabaseURL == "" {
		log.Warn("DATABASE_URL is not set; sync requests will fail until it is configured")
	}

	if appConfig.AuthMode == config.AuthModeNone {
		log.Warn("AUTH_MODE=none: the sync endpoint trusts the userId sent by the client")
	}

	// A nil model leaves the assistant unconfigured; /api/chat answers 503.
	var model assistant.Model
	if appConfig.GeminiAPIKey != "" {
		gemini, err := assistant.NewGeminiModel(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create assistant model: %w", err)
		}
		model = gemini
	}

	router := server.NewRouter(server.Dependencies{
		Config:    appConfig,
		Sync:      server.NewServices(dbManager),
		Assistant: assistant.New(model),
		Migrator:  dbManager,
	})

	log.Infof("Starting Spendly sync server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
