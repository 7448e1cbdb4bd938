package services

import (
	"context"
	"fmt"

	"spendly/internal/database"
	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// expenseService handles expense rows.
type expenseService struct {
	provider database.Provider
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(provider database.Provider) ExpenseServicer {
	return &expenseService{provider: provider}
}

// CreateExpense upserts an expense keyed by its id.
func (s *expenseService) CreateExpense(ctx context.Context, expense *models.Expense) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	written, err := upsertOwned(db, "expenses", expense, "amount", "category", "description", "date")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !written {
		return apperrors.WithMessage(apperrors.ErrForbidden, fmt.Sprintf("expense %s belongs to another user", expense.ID))
	}
	return nil
}

// GetExpenses returns all of a user's expenses, newest date first.
func (s *expenseService) GetExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err := db.Where("user_id = ?", userID).Order("date DESC").Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
