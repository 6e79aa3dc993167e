package models

// Venue is the canonical record for a venue id, merged from every document
// family that mentions it. Only the id is guaranteed to be present; the
// importer fills the remaining fields in as they are observed and never
// overwrites a value that has already been set.
type Venue struct {
	ID      string   `gorm:"primaryKey" json:"id"`
	Name    *string  `json:"name"`
	Address *string  `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	URL     *string  `json:"url"`
}
