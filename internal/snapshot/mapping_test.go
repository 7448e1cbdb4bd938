package snapshot

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendly/internal/models"
)

func TestExpenseRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "two decimals", amount: 12.50, want: "12.5"},
		{name: "cents", amount: 0.01, want: "0.01"},
		{name: "classic float trap", amount: 0.1 + 0.2, want: "0.3"},
		{name: "large", amount: 9999999999.99, want: "9999999999.99"},
		{name: "integer", amount: 42, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := Expense{ID: "e1", Amount: tt.amount, Category: "food", Description: "lunch", Date: "2024-01-05"}

			row, err := ExpenseToRemote("u1", local)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if row.UserID != "u1" {
				t.Errorf("expected user_id u1, got %q", row.UserID)
			}
			if row.Amount.String() != tt.want {
				t.Errorf("expected amount %s, got %s", tt.want, row.Amount.String())
			}

			// Simulate the NUMERIC(12,2) column handing back a padded string.
			stored, err := decimal.NewFromString(row.Amount.StringFixed(2))
			if err != nil {
				t.Fatalf("failed to parse stored amount: %v", err)
			}
			row.Amount = stored

			back := ExpenseFromRemote(row)
			wantAmount, _ := decimal.RequireFromString(tt.want).Float64()
			if back.Amount != wantAmount {
				t.Errorf("expected amount %v, got %v", wantAmount, back.Amount)
			}
			if back.Category != "food" || back.Description != "lunch" || back.Date != "2024-01-05" {
				t.Errorf("round trip mismatch: %+v", back)
			}
		})
	}
}

func TestExpenseToRemote_InvalidDate(t *testing.T) {
	_, err := ExpenseToRemote("u1", Expense{ID: "e1", Amount: 1, Category: "food", Date: "05/01/2024"})
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestExpenseFromRemote_CreatedAt(t *testing.T) {
	created := time.Date(2024, 1, 5, 12, 30, 0, 0, time.FixedZone("X", 3600))
	e := ExpenseFromRemote(models.Expense{ID: "e1", Date: models.NewDate(2024, 1, 5), CreatedAt: created})
	if e.CreatedAt == nil {
		t.Fatal("expected createdAt to be set")
	}
	if e.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC createdAt, got %v", e.CreatedAt.Location())
	}

	e = ExpenseFromRemote(models.Expense{ID: "e2", Date: models.NewDate(2024, 1, 5)})
	if e.CreatedAt != nil {
		t.Error("expected nil createdAt for zero timestamp")
	}
}

func TestBudgetMapping(t *testing.T) {
	t.Run("spent is dropped on push", func(t *testing.T) {
		row := BudgetToRemote("u1", Budget{ID: "b1", Category: "food", Limit: 300, Spent: 250, Period: "weekly"})
		if row.Amount.String() != "300" {
			t.Errorf("expected amount 300, got %s", row.Amount)
		}
		if row.Period != models.BudgetPeriodWeekly {
			t.Errorf("expected weekly, got %s", row.Period)
		}
	})

	t.Run("empty period defaults to monthly", func(t *testing.T) {
		row := BudgetToRemote("u1", Budget{ID: "b1", Category: "food", Limit: 300})
		if row.Period != models.BudgetPeriodMonthly {
			t.Errorf("expected monthly, got %s", row.Period)
		}
	})

	t.Run("spent is zero on pull", func(t *testing.T) {
		b := BudgetFromRemote(models.Budget{ID: "b1", Category: "food", Amount: decimal.RequireFromString("300.00"), Period: models.BudgetPeriodMonthly})
		if b.Spent != 0 {
			t.Errorf("expected spent 0, got %v", b.Spent)
		}
		if b.Limit != 300 {
			t.Errorf("expected limit 300, got %v", b.Limit)
		}
	})
}

func TestGoalMapping(t *testing.T) {
	t.Run("with deadline", func(t *testing.T) {
		row, err := GoalToRemote("u1", Goal{ID: "g1", Name: "Trip", TargetAmount: 2000, CurrentAmount: 150.75, Deadline: "2025-06-30", Color: "#ff8800"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row.Deadline == nil || row.Deadline.String() != "2025-06-30" {
			t.Fatalf("expected deadline 2025-06-30, got %v", row.Deadline)
		}
		if row.TargetAmount.String() != "2000" || row.CurrentAmount.String() != "150.75" {
			t.Errorf("unexpected amounts: %s / %s", row.TargetAmount, row.CurrentAmount)
		}

		back := GoalFromRemote(row)
		if back.TargetAmount != 2000 || back.CurrentAmount != 150.75 || back.Deadline != "2025-06-30" || back.Color != "#ff8800" {
			t.Errorf("round trip mismatch: %+v", back)
		}
	})

	t.Run("without deadline", func(t *testing.T) {
		row, err := GoalToRemote("u1", Goal{ID: "g1", Name: "Fund", TargetAmount: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row.Deadline != nil {
			t.Errorf("expected nil deadline, got %v", row.Deadline)
		}
		if back := GoalFromRemote(row); back.Deadline != "" {
			t.Errorf("expected empty deadline, got %q", back.Deadline)
		}
	})

	t.Run("invalid deadline", func(t *testing.T) {
		if _, err := GoalToRemote("u1", Goal{ID: "g1", Name: "Fund", Deadline: "soon"}); err == nil {
			t.Fatal("expected error for malformed deadline")
		}
	})
}

func TestProfileMapping(t *testing.T) {
	p := Profile{
		Name:                "Ada",
		Email:               "ada@example.com",
		PhotoURL:            "https://example.com/a.png",
		Provider:            "google",
		MonthlyIncome:       5200.5,
		Currency:            "EUR",
		OnboardingCompleted: true,
	}

	user := ProfileToUser("u1", p)
	if user.ID != "u1" || user.DisplayName != "Ada" || user.Email != "ada@example.com" || user.Provider != "google" {
		t.Errorf("unexpected user row: %+v", user)
	}

	settings := ProfileToSettings(p)
	got := ProfileFromSettings(&models.UserSettings{UserID: "u1", Settings: settings})
	if got == nil {
		t.Fatal("expected profile")
	}
	if got.Name != "Ada" || got.MonthlyIncome != 5200.5 || got.Currency != "EUR" || !got.OnboardingCompleted {
		t.Errorf("unexpected profile: %+v", got)
	}
}

func TestProfileFromSettings(t *testing.T) {
	t.Run("nil row yields nil profile", func(t *testing.T) {
		if p := ProfileFromSettings(nil); p != nil {
			t.Errorf("expected nil profile, got %+v", p)
		}
	})

	t.Run("tolerates loosely typed values", func(t *testing.T) {
		p := ProfileFromSettings(&models.UserSettings{Settings: models.SettingsData{
			"monthlyIncome":       "1200.25",
			"onboardingCompleted": "true",
			"name":                42,
			"theme":               "dark",
		}})
		if p.MonthlyIncome != 1200.25 {
			t.Errorf("expected income 1200.25, got %v", p.MonthlyIncome)
		}
		if !p.OnboardingCompleted {
			t.Error("expected onboarding completed")
		}
		if p.Name != "" {
			t.Errorf("expected empty name for non-string value, got %q", p.Name)
		}
	})
}

func TestProfileFromRemote(t *testing.T) {
	user := &models.User{
		ID:          "u1",
		Email:       "ada@example.com",
		DisplayName: "Ada L.",
		PhotoURL:    "https://example.com/ada.png",
		Provider:    "google",
	}
	settings := &models.UserSettings{UserID: "u1", Settings: models.SettingsData{
		"name":     "Ada",
		"currency": "GBP",
	}}

	t.Run("identity comes from the user row", func(t *testing.T) {
		p := ProfileFromRemote(user, settings)
		if p == nil {
			t.Fatal("expected profile")
		}
		if p.Email != "ada@example.com" || p.PhotoURL != "https://example.com/ada.png" || p.Provider != "google" {
			t.Errorf("identity fields not filled: %+v", p)
		}
		if p.Name != "Ada" || p.Currency != "GBP" {
			t.Errorf("settings fields lost: %+v", p)
		}
	})

	t.Run("display name fills a missing settings name", func(t *testing.T) {
		p := ProfileFromRemote(user, &models.UserSettings{Settings: models.SettingsData{}})
		if p.Name != "Ada L." {
			t.Errorf("expected display name fallback, got %q", p.Name)
		}
	})

	t.Run("no settings means no profile", func(t *testing.T) {
		if p := ProfileFromRemote(user, nil); p != nil {
			t.Errorf("expected nil profile, got %+v", p)
		}
	})

	t.Run("missing user row", func(t *testing.T) {
		p := ProfileFromRemote(nil, settings)
		if p == nil || p.Name != "Ada" || p.Email != "" {
			t.Errorf("unexpected profile: %+v", p)
		}
	})
}
