package models

// User is the exporting account ("self" in users.json). The export describes
// exactly one user, but the table is keyed by the external id all the same.
type User struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         *string `json:"email"`
	Gender        *string `json:"gender"`
	HomeCity      *string `json:"home_city"`
	Bio           *string `json:"bio"`
	Phone         *string `json:"phone"`
	VerifiedPhone bool    `json:"verified_phone"`
	VerifiedEmail bool    `json:"verified_email"`
	Facebook      *string `json:"facebook"`
	PhotoPrefix   *string `json:"photo_prefix"`
	PhotoSuffix   *string `json:"photo_suffix"`
	Birthday      *int64  `json:"birthday"`
	DisplayName   *string `json:"display_name"`
	TipsCount     *int    `json:"tips_count"`
	ListsCount    *int    `json:"lists_count"`
}
