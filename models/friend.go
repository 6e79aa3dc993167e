package models

// Friend is an edge from the self user to one friend, with the friend's
// display fields denormalized onto the row.
type Friend struct {
	UserID             string  `gorm:"primaryKey" json:"user_id"`
	FriendID           string  `gorm:"primaryKey" json:"friend_id"`
	FriendFirstName    *string `json:"friend_first_name"`
	FriendLastName     *string `json:"friend_last_name"`
	FriendCanonicalURL *string `json:"friend_canonical_url"`
}
