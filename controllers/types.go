package controllers

// StatSummary is the dashboard's headline numbers.
type StatSummary struct {
	TotalCheckins   int64   `json:"total_checkins"`
	UniqueVenues    int64   `json:"unique_venues"`
	TopCity         *string `json:"top_city"`
	TotalDistanceKm float64 `json:"total_distance_km"`
}

// CheckinGeo is one check-in with resolvable coordinates, for the map.
type CheckinGeo struct {
	ID        string  `json:"id"`
	VenueName *string `json:"venue_name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"`
	Shout     *string `json:"shout"`
}

// WeeklyCount is one ISO-week histogram bucket. Week is the Monday the week
// starts on, formatted YYYY-MM-DD.
type WeeklyCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}
