package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"spendly/internal/database"
	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// settingsService handles the per-user settings blob.
type settingsService struct {
	provider database.Provider
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(provider database.Provider) SettingsServicer {
	return &settingsService{provider: provider}
}

// SaveSettings replaces the user's settings blob.
func (s *settingsService) SaveSettings(ctx context.Context, userID string, settings models.SettingsData) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	if settings == nil {
		settings = models.SettingsData{}
	}
	row := &models.UserSettings{UserID: userID, Settings: settings}
	if err := upsert(db, row, "user_id", "settings", "updated_at"); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetSettings returns the user's settings row, or nil when none was saved.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var row models.UserSettings
	if err := db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}
