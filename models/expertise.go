package models

type Expertise struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Type         *string `json:"type"`
	Timestamp    *string `json:"timestamp"`
	LastModified *string `json:"last_modified"`
}

// TableName avoids the awkward default pluralization of "expertise".
func (Expertise) TableName() string { return "expertise" }
