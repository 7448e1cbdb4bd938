package models

// All returns every model owned by the sync schema, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Expense{},
		&Budget{},
		&Goal{},
		&UserSettings{},
		&SyncEvent{},
	}
}
