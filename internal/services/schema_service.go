package services

import (
	"context"
	"sync/atomic"

	"spendly/internal/database"
	apperrors "spendly/internal/errors"
	"spendly/internal/logger"
	"spendly/internal/models"
)

// schemaService creates the sync tables on first use.
type schemaService struct {
	provider    database.Provider
	initialized atomic.Bool
}

// NewSchemaService creates a new SchemaServicer.
func NewSchemaService(provider database.Provider) SchemaServicer {
	return &schemaService{provider: provider}
}

// InitializeTables creates any missing tables, columns, indexes and
// foreign keys. After the first success it is a no-op for the life of the
// process; a failed attempt is retried on the next call. Concurrent first
// callers may both run the migration, which is idempotent.
func (s *schemaService) InitializeTables(ctx context.Context) error {
	if s.initialized.Load() {
		return nil
	}

	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.initialized.Store(true)
	logger.Get().Info("Database tables initialized")
	return nil
}
