package models

import (
	"time"

	"spendly/internal/uuid"

	"gorm.io/gorm"
)

// SyncDirection identifies which way a sync moved data.
type SyncDirection string

const (
	SyncDirectionPush SyncDirection = "push"
	SyncDirectionPull SyncDirection = "pull"
)

// SyncEvent records the outcome of one push or pull for troubleshooting.
// It deliberately has no foreign key: pulls for unknown users are logged too.
type SyncEvent struct {
	ID        string        `gorm:"primaryKey;type:text" json:"id"`
	UserID    string        `gorm:"type:text;not null;index:idx_sync_events_user_created,priority:1" json:"user_id"`
	Direction SyncDirection `gorm:"not null" json:"direction"`
	Expenses  int           `gorm:"not null" json:"expenses"`
	Budgets   int           `gorm:"not null" json:"budgets"`
	Goals     int           `gorm:"not null" json:"goals"`
	Profile   bool          `gorm:"not null" json:"profile"`
	Success   bool          `gorm:"not null" json:"success"`
	Error     string        `gorm:"not null" json:"error,omitempty"`
	IPAddress string        `gorm:"not null" json:"ip_address"`
	CreatedAt time.Time     `gorm:"index:idx_sync_events_user_created,priority:2" json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (e *SyncEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New()
	}
	return nil
}
