package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record. Amount and Date drive every
// aggregation (totals, trends, budget spent).
type Expense struct {
	ID          string          `gorm:"primaryKey;type:text" json:"id"`
	UserID      string          `gorm:"type:text;not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `gorm:"not null" json:"description"`
	Date        Date            `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}
