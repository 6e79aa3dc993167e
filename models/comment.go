package models

// Comment has no external id in the export, so rows are keyed by a generated
// sequence number. This is the one table where re-importing duplicates rows
// is structurally possible; comments.json is treated as a single-sourced,
// single-run document.
type Comment struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  *string `json:"user_id"`
	Time    *string `json:"time"`
	Comment *string `json:"comment"`
}
