package importer

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertIgnore creates record unless a row with its primary key already
// exists. Non-venue families are single-sourced and authoritative on first
// sight, so a duplicate key is silently skipped rather than updated; this is
// what makes re-running a source file a no-op. Reports whether a row was
// actually written.
func insertIgnore(tx *gorm.DB, record any) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
