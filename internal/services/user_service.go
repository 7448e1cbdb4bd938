package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spendly/internal/database"
	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// userService handles user rows.
type userService struct {
	provider database.Provider
}

// NewUserService creates a new UserServicer.
func NewUserService(provider database.Provider) UserServicer {
	return &userService{provider: provider}
}

// CreateUser upserts the user row keyed by its id. Profile fields are
// overwritten; created_at keeps its first value.
func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	if err := upsert(db, user, "id", "email", "display_name", "photo_url", "provider", "updated_at"); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// EnsureUser inserts an empty user row unless one already exists, so rows
// owned by the user can reference it.
func (s *userService) EnsureUser(ctx context.Context, userID string) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	user := &models.User{ID: userID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetUser returns the user row by id.
func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
