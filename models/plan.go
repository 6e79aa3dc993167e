package models

type Plan struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	UserID       *string `json:"user_id"`
	CreatedAt    *string `json:"created_at"`
	ModifiedTime *string `json:"modified_time"`
	IsBroadcast  bool    `json:"is_broadcast"`
	Type         *string `json:"type"`
}
