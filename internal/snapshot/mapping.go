package snapshot

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"spendly/internal/models"
)

// Settings blob keys.
const (
	settingName                = "name"
	settingMonthlyIncome       = "monthlyIncome"
	settingCurrency            = "currency"
	settingOnboardingCompleted = "onboardingCompleted"
)

// DefaultBudgetPeriod applies when a pushed budget carries no period.
const DefaultBudgetPeriod = models.BudgetPeriodMonthly

// ToDecimal converts a local amount to a 2dp decimal.
func ToDecimal(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// ToFloat converts a remote decimal to a local amount. For values with at
// most two fractional digits this yields the same float64 as parsing the
// decimal string.
func ToFloat(amount decimal.Decimal) float64 {
	return amount.InexactFloat64()
}

// ExpenseToRemote maps a local expense to its row.
//
//	id → id, amount (number) → amount (numeric 2dp), category → category,
//	description → description, date ("YYYY-MM-DD") → date (DATE).
//
// createdAt is not sent; the row's created_at is set on first insert.
func ExpenseToRemote(userID string, e Expense) (models.Expense, error) {
	date, err := models.ParseDate(e.Date)
	if err != nil {
		return models.Expense{}, err
	}
	return models.Expense{
		ID:          e.ID,
		UserID:      userID,
		Amount:      ToDecimal(e.Amount),
		Category:    e.Category,
		Description: e.Description,
		Date:        date,
	}, nil
}

// ExpenseFromRemote maps an expense row to its local shape.
func ExpenseFromRemote(row models.Expense) Expense {
	e := Expense{
		ID:          row.ID,
		Amount:      ToFloat(row.Amount),
		Category:    row.Category,
		Description: row.Description,
		Date:        row.Date.String(),
	}
	if !row.CreatedAt.IsZero() {
		created := row.CreatedAt.UTC()
		e.CreatedAt = &created
	}
	return e
}

// BudgetToRemote maps a local budget to its row.
//
//	id → id, category → category, limit → amount, period → period
//	(empty → monthly). spent is dropped.
func BudgetToRemote(userID string, b Budget) models.Budget {
	period := models.BudgetPeriod(b.Period)
	if period == "" {
		period = DefaultBudgetPeriod
	}
	return models.Budget{
		ID:       b.ID,
		UserID:   userID,
		Category: b.Category,
		Amount:   ToDecimal(b.Limit),
		Period:   period,
	}
}

// BudgetFromRemote maps a budget row to its local shape with spent = 0.
// The caller recomputes spent from local expenses.
func BudgetFromRemote(row models.Budget) Budget {
	return Budget{
		ID:       row.ID,
		Category: row.Category,
		Limit:    ToFloat(row.Amount),
		Spent:    0,
		Period:   string(row.Period),
	}
}

// GoalToRemote maps a local goal to its row.
//
//	id → id, name → name, targetAmount → target_amount,
//	currentAmount → current_amount, deadline → deadline (NULL when empty),
//	color → color.
func GoalToRemote(userID string, g Goal) (models.Goal, error) {
	row := models.Goal{
		ID:            g.ID,
		UserID:        userID,
		Name:          g.Name,
		TargetAmount:  ToDecimal(g.TargetAmount),
		CurrentAmount: ToDecimal(g.CurrentAmount),
		Color:         g.Color,
	}
	if g.Deadline != "" {
		deadline, err := models.ParseDate(g.Deadline)
		if err != nil {
			return models.Goal{}, err
		}
		row.Deadline = &deadline
	}
	return row, nil
}

// GoalFromRemote maps a goal row to its local shape.
func GoalFromRemote(row models.Goal) Goal {
	g := Goal{
		ID:            row.ID,
		Name:          row.Name,
		TargetAmount:  ToFloat(row.TargetAmount),
		CurrentAmount: ToFloat(row.CurrentAmount),
		Color:         row.Color,
	}
	if row.Deadline != nil && !row.Deadline.IsZero() {
		g.Deadline = row.Deadline.String()
	}
	return g
}

// ProfileToUser maps the identity part of a profile to the user row.
//
//	name → display_name, email → email, photoURL → photo_url,
//	provider → provider.
func ProfileToUser(userID string, p Profile) models.User {
	return models.User{
		ID:          userID,
		Email:       p.Email,
		DisplayName: p.Name,
		PhotoURL:    p.PhotoURL,
		Provider:    p.Provider,
	}
}

// ProfileToSettings maps the preference part of a profile to the settings
// blob: name, monthlyIncome, currency, onboardingCompleted.
func ProfileToSettings(p Profile) models.SettingsData {
	return models.SettingsData{
		settingName:                p.Name,
		settingMonthlyIncome:       p.MonthlyIncome,
		settingCurrency:            p.Currency,
		settingOnboardingCompleted: p.OnboardingCompleted,
	}
}

// ProfileFromSettings flattens a settings row into a profile. A nil row
// yields a nil profile rather than a default-filled one. Unknown keys are
// ignored and mistyped values fall back to their zero value.
func ProfileFromSettings(row *models.UserSettings) *Profile {
	if row == nil {
		return nil
	}
	s := row.Settings
	return &Profile{
		Name:                stringSetting(s, settingName),
		MonthlyIncome:       numberSetting(s, settingMonthlyIncome),
		Currency:            stringSetting(s, settingCurrency),
		OnboardingCompleted: boolSetting(s, settingOnboardingCompleted),
	}
}

// ProfileFromRemote builds the pulled profile from the settings blob and
// the user row's identity fields (email, photo_url, provider). The profile
// is nil when settings are absent, even if the user row exists. A nil user
// leaves the identity fields empty.
func ProfileFromRemote(user *models.User, settings *models.UserSettings) *Profile {
	p := ProfileFromSettings(settings)
	if p == nil || user == nil {
		return p
	}
	p.Email = user.Email
	p.PhotoURL = user.PhotoURL
	p.Provider = user.Provider
	if p.Name == "" {
		p.Name = user.DisplayName
	}
	return p
}

func stringSetting(s models.SettingsData, key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

func numberSetting(s models.SettingsData, key string) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func boolSetting(s models.SettingsData, key string) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}
