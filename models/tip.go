package models

type Tip struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	CreatedAt     *string `json:"created_at"`
	Text          *string `json:"text"`
	Type          *string `json:"type"`
	CanonicalURL  *string `json:"canonical_url"`
	ViewCount     *int    `json:"view_count"`
	AgreeCount    *int    `json:"agree_count"`
	DisagreeCount *int    `json:"disagree_count"`
	UserID        *string `json:"user_id"`
	VenueID       *string `json:"venue_id"`
}
