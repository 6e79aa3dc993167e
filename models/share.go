package models

type Share struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	SharedAt *string `json:"shared_at"`
	State    *string `json:"state"`
	Type     *string `json:"type"`
}
