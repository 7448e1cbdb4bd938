package services

import (
	"context"
	"fmt"

	"spendly/internal/database"
	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// budgetService handles budget rows.
type budgetService struct {
	provider database.Provider
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(provider database.Provider) BudgetServicer {
	return &budgetService{provider: provider}
}

// CreateBudget upserts a budget keyed by its id.
func (s *budgetService) CreateBudget(ctx context.Context, budget *models.Budget) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	written, err := upsertOwned(db, "budgets", budget, "category", "amount", "period", "updated_at")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !written {
		return apperrors.WithMessage(apperrors.ErrForbidden, fmt.Sprintf("budget %s belongs to another user", budget.ID))
	}
	return nil
}

// GetBudgets returns all of a user's budgets in creation order.
func (s *budgetService) GetBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var budgets []models.Budget
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}
