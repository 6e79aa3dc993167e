package models

// Photo is a photo attached to a check-in. CheckinID is extracted from the
// photo's related-item URL and stays nil when no check-in id can be found.
type Photo struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	CheckinID *string `json:"checkinId"`
	CreatedAt *string `json:"createdAt"`
	FullURL   *string `json:"fullUrl"`
	LocalPath string  `json:"localPath"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
}
