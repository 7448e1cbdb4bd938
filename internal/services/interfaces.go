package services

import (
	"context"

	"spendly/internal/models"
	"spendly/internal/snapshot"
)

// SchemaServicer prepares the remote tables.
type SchemaServicer interface {
	InitializeTables(ctx context.Context) error
}

// UserServicer defines the contract for user rows.
type UserServicer interface {
	CreateUser(ctx context.Context, user *models.User) error
	EnsureUser(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// ExpenseServicer defines the contract for expense rows.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpenses(ctx context.Context, userID string) ([]models.Expense, error)
}

// BudgetServicer defines the contract for budget rows.
type BudgetServicer interface {
	CreateBudget(ctx context.Context, budget *models.Budget) error
	GetBudgets(ctx context.Context, userID string) ([]models.Budget, error)
}

// GoalServicer defines the contract for goal rows.
type GoalServicer interface {
	CreateGoal(ctx context.Context, goal *models.Goal) error
	GetGoals(ctx context.Context, userID string) ([]models.Goal, error)
}

// SettingsServicer defines the contract for the per-user settings blob.
type SettingsServicer interface {
	SaveSettings(ctx context.Context, userID string, settings models.SettingsData) error
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)
}

// AuditServicer records sync events.
type AuditServicer interface {
	Record(ctx context.Context, event *models.SyncEvent)
}

// SyncServicer moves a user's data between the local shape and the
// remote tables.
type SyncServicer interface {
	Push(ctx context.Context, req *snapshot.PushRequest, ipAddress string) (*snapshot.SyncedCounts, error)
	Pull(ctx context.Context, userID, ipAddress string) (*snapshot.Data, error)
}
