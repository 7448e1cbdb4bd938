package models

import "time"

// User is the remote identity row. The id is the identity provider's uid.
// Rows are never deleted by the application; the cascade constraints on
// owned tables only matter for manual cleanup.
type User struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	Email       string    `gorm:"not null" json:"email"`
	DisplayName string    `gorm:"not null" json:"display_name"`
	PhotoURL    string    `gorm:"not null" json:"photo_url"`
	Provider    string    `gorm:"not null" json:"provider"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships. Only used to declare ON DELETE CASCADE for AutoMigrate.
	Expenses []Expense     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Budgets  []Budget      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Goals    []Goal        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Settings *UserSettings `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
