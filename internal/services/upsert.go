package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsert inserts value, or overwrites the given columns of the row that
// already has the same key. created_at is never in columns, so the first
// insert time survives later writes.
func upsert(db *gorm.DB, value interface{}, key string, columns ...string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(value).Error
}

// upsertOwned is upsert keyed by id for user-owned rows. A conflicting row
// that belongs to a different user is left untouched and reported as not
// written.
func upsertOwned(db *gorm.DB, table string, value interface{}, columns ...string) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "?.user_id = excluded.user_id", Vars: []interface{}{clause.Table{Name: table}}},
		}},
	}).Create(value)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
