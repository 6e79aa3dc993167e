package models

// UnconfirmedVisit is a visit Swarm detected but the user never confirmed.
// Unlike confirmed visits these reference a venue and carry raw coordinates.
type UnconfirmedVisit struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	StartTime *string  `json:"start_time"`
	EndTime   *string  `json:"end_time"`
	VenueID   *string  `json:"venue_id"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}
