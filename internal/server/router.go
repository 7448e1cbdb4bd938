// Package server assembles the HTTP API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spendly/internal/config"
	"spendly/internal/database"
	"spendly/internal/handlers"
	"spendly/internal/middleware"
	"spendly/internal/services"

	_ "spendly/internal/docs" // Import swagger docs
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Config    *config.Config
	Sync      services.SyncServicer
	Assistant handlers.Replier
	Migrator  handlers.Migrator
}

// NewServices builds the sync service stack over provider.
func NewServices(provider database.Provider) services.SyncServicer {
	return services.NewSyncService(
		services.NewSchemaService(provider),
		services.NewUserService(provider),
		services.NewExpenseService(provider),
		services.NewBudgetService(provider),
		services.NewGoalService(provider),
		services.NewSettingsService(provider),
		services.NewAuditService(provider),
	)
}

// NewRouter creates the Gin engine with all routes registered.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	syncHandler := handlers.NewSyncHandler(deps.Sync)
	chatHandler := handlers.NewChatHandler(deps.Assistant)
	adminHandler := handlers.NewAdminHandler(deps.Migrator)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors(cfg.CORSAllowOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", handlers.Health)

	// Sync and assistant routes. Identity comes from the request body or
	// query unless AUTH_MODE=jwt binds it to a session token.
	session := api.Group("")
	session.Use(middleware.SessionAuth(cfg.AuthMode, cfg.JWTSecret))
	session.POST("/sync", syncHandler.Push)
	session.GET("/sync", syncHandler.Pull)
	session.POST("/chat", chatHandler.Chat)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg.AdminAPIKey))
	admin.POST("/migrate", adminHandler.Migrate)

	return router
}

func cors(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
