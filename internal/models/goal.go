package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. Completion (current >= target) is derived.
type Goal struct {
	ID            string          `gorm:"primaryKey;type:text" json:"id"`
	UserID        string          `gorm:"type:text;not null;index" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"current_amount"`
	Deadline      *Date           `gorm:"type:date" json:"deadline,omitempty"`
	Color         string          `gorm:"not null" json:"color"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Complete reports whether the goal has reached its target.
func (g *Goal) Complete() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
