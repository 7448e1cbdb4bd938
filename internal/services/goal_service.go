package services

import (
	"context"
	"fmt"

	"spendly/internal/database"
	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// goalService handles goal rows.
type goalService struct {
	provider database.Provider
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(provider database.Provider) GoalServicer {
	return &goalService{provider: provider}
}

// CreateGoal upserts a goal keyed by its id.
func (s *goalService) CreateGoal(ctx context.Context, goal *models.Goal) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	written, err := upsertOwned(db, "goals", goal,
		"name", "target_amount", "current_amount", "deadline", "color", "updated_at")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !written {
		return apperrors.WithMessage(apperrors.ErrForbidden, fmt.Sprintf("goal %s belongs to another user", goal.ID))
	}
	return nil
}

// GetGoals returns all of a user's goals in creation order.
func (s *goalService) GetGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var goals []models.Goal
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Order("id ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}
