package services

import (
	"context"

	"spendly/internal/database"
	"spendly/internal/logger"
	"spendly/internal/models"
)

// auditService records sync events.
type auditService struct {
	provider database.Provider
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(provider database.Provider) AuditServicer {
	return &auditService{provider: provider}
}

// Record stores a sync event. Errors are logged but never propagate
// to avoid disrupting the sync itself.
func (s *auditService) Record(ctx context.Context, event *models.SyncEvent) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		logger.Get().Warnw("skipping sync event", "error", err, "user_id", event.UserID)
		return
	}

	if err := db.Create(event).Error; err != nil {
		logger.Get().Errorw("failed to create sync event",
			"error", err,
			"user_id", event.UserID,
			"direction", event.Direction,
		)
	}
}
