package models

// Checkin is a single Swarm check-in. Rows are immutable once written;
// re-importing the same id is a no-op.
type Checkin struct {
	ID string `gorm:"primaryKey" json:"id"`
	// CreatedAt is a validated seconds-since-epoch value stored as text,
	// matching the export format. Rows with an unparsable value are kept
	// but excluded from time-based query results.
	CreatedAt *string `json:"createdAt"`
	VenueID   *string `json:"venueId"`
	Shout     *string `json:"shout"`
	TimeZone  *string `json:"timeZone"`
}
