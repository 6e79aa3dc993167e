package models

// VenueRating is a venue the user liked ("venueLikes" in the export).
type VenueRating struct {
	ID   string  `gorm:"primaryKey" json:"id"`
	Name *string `json:"name"`
	URL  *string `json:"url"`
}
