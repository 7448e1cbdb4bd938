package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendly/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique id and email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	user := &models.User{
		ID:          fmt.Sprintf("user-%d", n),
		Email:       fmt.Sprintf("user%d@test.com", n),
		DisplayName: fmt.Sprintf("Test User %d", n),
		Provider:    "google",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense for the user on the given day.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, amount, date string) *models.Expense {
	t.Helper()

	day, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("invalid fixture date: %v", err)
	}
	expense := &models.Expense{
		ID:          fmt.Sprintf("expense-%d", nextID()),
		UserID:      userID,
		Amount:      decimal.RequireFromString(amount),
		Category:    "food",
		Description: "fixture",
		Date:        day,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a monthly budget for the user.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category, amount string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		ID:       fmt.Sprintf("budget-%d", nextID()),
		UserID:   userID,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Period:   models.BudgetPeriodMonthly,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates a goal for the user with no deadline.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID, target, current string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		ID:            fmt.Sprintf("goal-%d", nextID()),
		UserID:        userID,
		Name:          fmt.Sprintf("Goal %d", nextID()),
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
		Color:         "#22c55e",
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestSettings stores a settings blob for the user.
func CreateTestSettings(t *testing.T, db *gorm.DB, userID string, settings models.SettingsData) *models.UserSettings {
	t.Helper()

	row := &models.UserSettings{UserID: userID, Settings: settings}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return row
}
