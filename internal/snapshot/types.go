// Package snapshot defines the local (client-side) shape of a user's data
// and the transformations between that shape and the remote rows.
//
// Local fields are camelCase and amounts are JSON numbers; remote rows are
// snake_case with NUMERIC amounts. Every conversion lives in this package
// so call sites never reshape records by hand.
package snapshot

import "time"

// Expense is the local shape of a spending record.
type Expense struct {
	ID          string     `json:"id" binding:"required,max=128"`
	Amount      float64    `json:"amount" binding:"gte=0"`
	Category    string     `json:"category" binding:"required,max=64"`
	Description string     `json:"description" binding:"max=500"`
	Date        string     `json:"date" binding:"required,calendar_date"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Budget is the local shape of a category budget. Spent is derived from
// expenses and is never sent to or trusted from the server.
type Budget struct {
	ID       string  `json:"id" binding:"required,max=128"`
	Category string  `json:"category" binding:"required,max=64"`
	Limit    float64 `json:"limit" binding:"gte=0"`
	Spent    float64 `json:"spent"`
	Period   string  `json:"period" binding:"omitempty,budget_period"`
}

// Goal is the local shape of a savings goal.
type Goal struct {
	ID            string  `json:"id" binding:"required,max=128"`
	Name          string  `json:"name" binding:"required,max=100"`
	TargetAmount  float64 `json:"targetAmount" binding:"gte=0"`
	CurrentAmount float64 `json:"currentAmount" binding:"gte=0"`
	Deadline      string  `json:"deadline,omitempty" binding:"omitempty,calendar_date"`
	Color         string  `json:"color,omitempty" binding:"omitempty,hex_color"`
}

// Complete reports whether the goal has reached its target.
func (g Goal) Complete() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// Profile is the flattened local view of the user row and settings blob.
type Profile struct {
	Name                string  `json:"name" binding:"max=100"`
	Email               string  `json:"email,omitempty" binding:"omitempty,email,max=255"`
	PhotoURL            string  `json:"photoURL,omitempty" binding:"omitempty,url,max=2048"`
	Provider            string  `json:"provider,omitempty" binding:"max=32"`
	MonthlyIncome       float64 `json:"monthlyIncome" binding:"gte=0"`
	Currency            string  `json:"currency,omitempty" binding:"omitempty,iso4217"`
	OnboardingCompleted bool    `json:"onboardingCompleted"`
}

// PushRequest is the body of POST /api/sync.
type PushRequest struct {
	UserID   string    `json:"userId"`
	Expenses []Expense `json:"expenses,omitempty" binding:"omitempty,dive"`
	Budgets  []Budget  `json:"budgets,omitempty" binding:"omitempty,dive"`
	Goals    []Goal    `json:"goals,omitempty" binding:"omitempty,dive"`
	Profile  *Profile  `json:"profile,omitempty"`
}

// SyncedCounts reports how many records of each kind a push upserted.
type SyncedCounts struct {
	Expenses int  `json:"expenses"`
	Budgets  int  `json:"budgets"`
	Goals    int  `json:"goals"`
	Profile  bool `json:"profile"`
}

// PushResponse is the success body of POST /api/sync.
type PushResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Synced  SyncedCounts `json:"synced"`
}

// Data is a user's full data set in local shape. Profile is nil when the
// user has never saved settings.
type Data struct {
	Expenses []Expense `json:"expenses"`
	Budgets  []Budget  `json:"budgets"`
	Goals    []Goal    `json:"goals"`
	Profile  *Profile  `json:"profile"`
}

// PullResponse is the success body of GET /api/sync.
type PullResponse struct {
	Success bool `json:"success"`
	Data    Data `json:"data"`
}

// Normalize replaces nil slices with empty ones so they encode as [].
func (d *Data) Normalize() {
	if d.Expenses == nil {
		d.Expenses = []Expense{}
	}
	if d.Budgets == nil {
		d.Budgets = []Budget{}
	}
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
}
