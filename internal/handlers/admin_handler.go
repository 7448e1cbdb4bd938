package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendly/internal/logger"
)

// Migrator applies pending schema migrations.
type Migrator interface {
	RunMigrations() error
}

// AdminHandler handles operator endpoints.
type AdminHandler struct {
	migrator Migrator
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(migrator Migrator) *AdminHandler {
	return &AdminHandler{migrator: migrator}
}

// Migrate handles applying schema migrations.
// @Summary     Apply migrations
// @Description Apply pending SQL migrations to the configured database
// @Tags        admin
// @Produce     json
// @Security    AdminKey
// @Success     200 {object} MessageResponse "Migrations applied"
// @Failure     401 {object} ErrorResponse "Invalid or missing API key"
// @Failure     500 {object} ErrorResponse "Migration failed"
// @Failure     503 {object} ErrorResponse "Admin endpoints not configured"
// @Router      /admin/migrate [post]
func (h *AdminHandler) Migrate(c *gin.Context) {
	if err := h.migrator.RunMigrations(); err != nil {
		respondWithError(c, err)
		return
	}

	logger.Get().Infow("migrations applied via admin endpoint", "client_ip", c.ClientIP())
	c.JSON(http.StatusOK, MessageResponse{Message: "Migrations applied"})
}

// Health reports that the server is up.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
