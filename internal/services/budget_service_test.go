package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"spendly/internal/models"
	"spendly/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("upsert_overwrites_limit_and_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(testutil.Provider(db))
		user := testutil.CreateTestUser(t, db)
		ctx := context.Background()

		testutil.AssertNoError(t, svc.CreateBudget(ctx, &models.Budget{
			ID: "b1", UserID: user.ID, Category: "food", Amount: decimal.RequireFromString("300"), Period: models.BudgetPeriodMonthly,
		}))
		testutil.AssertNoError(t, svc.CreateBudget(ctx, &models.Budget{
			ID: "b1", UserID: user.ID, Category: "food", Amount: decimal.RequireFromString("75.50"), Period: models.BudgetPeriodWeekly,
		}))

		budgets, err := svc.GetBudgets(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(budgets))
		}
		if !budgets[0].Amount.Equal(decimal.RequireFromString("75.5")) {
			t.Errorf("expected amount 75.5, got %s", budgets[0].Amount)
		}
		if budgets[0].Period != models.BudgetPeriodWeekly {
			t.Errorf("expected weekly, got %s", budgets[0].Period)
		}
	})

	t.Run("foreign_id_is_not_overwritten", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(testutil.Provider(db))
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		existing := testutil.CreateTestBudget(t, db, owner.ID, "food", "300")

		err := svc.CreateBudget(context.Background(), &models.Budget{
			ID: existing.ID, UserID: other.ID, Category: "food", Amount: decimal.NewFromInt(1), Period: models.BudgetPeriodMonthly,
		})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestGetBudgets(t *testing.T) {
	t.Run("returns_user_budgets_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(testutil.Provider(db))
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user1.ID, "food", "300")
		testutil.CreateTestBudget(t, db, user1.ID, "rent", "1200")
		testutil.CreateTestBudget(t, db, user2.ID, "fun", "50")

		budgets, err := svc.GetBudgets(context.Background(), user1.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != 2 {
			t.Errorf("expected 2 budgets, got %d", len(budgets))
		}
	})
}
