package snapshot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendly/internal/models"
)

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Summary condenses a data set into the figures the dashboard and the
// assistant talk about.
type Summary struct {
	Month          string          `json:"month"`
	MonthTotal     float64         `json:"monthTotal"`
	ExpenseCount   int             `json:"expenseCount"`
	ByCategory     []CategoryTotal `json:"byCategory"`
	Budgets        []Budget        `json:"budgets"`
	OverBudget     []string        `json:"overBudget"`
	Goals          []Goal          `json:"goals"`
	CompletedGoals int             `json:"completedGoals"`
	MonthlyIncome  float64         `json:"monthlyIncome"`
	Currency       string          `json:"currency"`
}

// Summarize computes the summary of d for the month containing now.
func Summarize(d Data, now time.Time) Summary {
	start, end := PeriodWindow(models.BudgetPeriodMonthly, now)

	s := Summary{
		Month:   start.Format("2006-01"),
		Budgets: RecomputeSpent(d.Budgets, d.Expenses, now),
		Goals:   d.Goals,
	}
	if d.Profile != nil {
		s.MonthlyIncome = d.Profile.MonthlyIncome
		s.Currency = d.Profile.Currency
	}

	monthTotal := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, e := range d.Expenses {
		date, err := models.ParseDate(e.Date)
		if err != nil {
			continue
		}
		t := date.Time()
		if t.Before(start) || !t.Before(end) {
			continue
		}
		amount := ToDecimal(e.Amount)
		monthTotal = monthTotal.Add(amount)
		byCategory[e.Category] = byCategory[e.Category].Add(amount)
		s.ExpenseCount++
	}
	s.MonthTotal = ToFloat(monthTotal)

	for category, total := range byCategory {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Category: category, Total: ToFloat(total)})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if s.ByCategory[i].Total != s.ByCategory[j].Total {
			return s.ByCategory[i].Total > s.ByCategory[j].Total
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})

	for _, b := range s.Budgets {
		if b.Spent > b.Limit {
			s.OverBudget = append(s.OverBudget, b.Category)
		}
	}
	for _, g := range s.Goals {
		if g.Complete() {
			s.CompletedGoals++
		}
	}
	return s
}

// String renders the summary as plain text.
func (s Summary) String() string {
	var b strings.Builder
	currency := s.Currency
	if currency == "" {
		currency = "USD"
	}

	fmt.Fprintf(&b, "Month: %s\n", s.Month)
	if s.MonthlyIncome > 0 {
		fmt.Fprintf(&b, "Monthly income: %.2f %s\n", s.MonthlyIncome, currency)
	}
	fmt.Fprintf(&b, "Spent this month: %.2f %s across %d expenses\n", s.MonthTotal, currency, s.ExpenseCount)

	if len(s.ByCategory) > 0 {
		b.WriteString("By category:\n")
		for _, c := range s.ByCategory {
			fmt.Fprintf(&b, "  - %s: %.2f\n", c.Category, c.Total)
		}
	}
	if len(s.Budgets) > 0 {
		b.WriteString("Budgets:\n")
		for _, bud := range s.Budgets {
			fmt.Fprintf(&b, "  - %s (%s): %.2f of %.2f (%.0f%%)\n",
				bud.Category, bud.Period, bud.Spent, bud.Limit, bud.Percentage())
		}
	}
	if len(s.Goals) > 0 {
		fmt.Fprintf(&b, "Goals (%d of %d complete):\n", s.CompletedGoals, len(s.Goals))
		for _, g := range s.Goals {
			fmt.Fprintf(&b, "  - %s: %.2f of %.2f\n", g.Name, g.CurrentAmount, g.TargetAmount)
		}
	}
	return b.String()
}
