package snapshot

import (
	"time"

	"github.com/shopspring/decimal"

	"spendly/internal/models"
)

// PeriodWindow returns the half-open window [start, end) of the period
// containing now. Weeks start on Monday. Unknown periods are treated as
// monthly.
func PeriodWindow(period models.BudgetPeriod, now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case models.BudgetPeriodWeekly:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case models.BudgetPeriodYearly:
		start := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
}

// SpentFor sums the expenses in the budget's category that fall inside
// the budget's current period window. Expenses with unparsable dates are
// ignored.
func SpentFor(b Budget, expenses []Expense, now time.Time) float64 {
	period := models.BudgetPeriod(b.Period)
	if period == "" {
		period = DefaultBudgetPeriod
	}
	start, end := PeriodWindow(period, now)

	total := decimal.Zero
	for _, e := range expenses {
		if e.Category != b.Category {
			continue
		}
		d, err := models.ParseDate(e.Date)
		if err != nil {
			continue
		}
		t := d.Time()
		if t.Before(start) || !t.Before(end) {
			continue
		}
		total = total.Add(ToDecimal(e.Amount))
	}
	return ToFloat(total)
}

// RecomputeSpent returns a copy of budgets with Spent derived from
// expenses. Any incoming Spent value is discarded.
func RecomputeSpent(budgets []Budget, expenses []Expense, now time.Time) []Budget {
	out := make([]Budget, len(budgets))
	for i, b := range budgets {
		b.Spent = SpentFor(b, expenses, now)
		out[i] = b
	}
	return out
}

// Remaining returns limit minus spent. It is negative when over budget.
func (b Budget) Remaining() float64 {
	return ToFloat(ToDecimal(b.Limit).Sub(ToDecimal(b.Spent)))
}

// Percentage returns spent as a percentage of the limit, 0 for a zero limit.
func (b Budget) Percentage() float64 {
	if b.Limit <= 0 {
		return 0
	}
	return b.Spent / b.Limit * 100
}
