package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SettingsData is the opaque per-user settings blob, stored as JSONB.
type SettingsData map[string]interface{}

// GormDataType sets the column type used by AutoMigrate.
func (SettingsData) GormDataType() string {
	return "jsonb"
}

// Value implements driver.Valuer.
func (s SettingsData) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (s *SettingsData) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into SettingsData", value)
	}

	out := SettingsData{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decoding settings JSON: %w", err)
	}
	*s = out
	return nil
}

// UserSettings holds one settings blob per user.
type UserSettings struct {
	UserID    string       `gorm:"primaryKey;type:text" json:"user_id"`
	Settings  SettingsData `gorm:"not null" json:"settings"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TableName overrides the default table name.
func (UserSettings) TableName() string {
	return "user_settings"
}
