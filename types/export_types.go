package types

import "encoding/json"

// Document shapes of the Swarm export files. All exports share the same
// loose convention: a single JSON object whose top-level list key is
// family-specific ("items" everywhere except venueRatings.json, which uses
// "venueLikes"). Optional fields are pointers so that an absent field is
// distinguishable from an empty one. Epoch timestamps arrive as bare JSON
// numbers and are decoded as json.Number to avoid float rounding.

type CheckinsDocument struct {
	Items []CheckinItem `json:"items"`
}

type CheckinItem struct {
	ID        string         `json:"id"`
	CreatedAt json.Number    `json:"createdAt"`
	Shout     *string        `json:"shout,omitempty"`
	TimeZone  *string        `json:"timeZone,omitempty"`
	Venue     *EmbeddedVenue `json:"venue,omitempty"`
}

// EmbeddedVenue is the partial venue object embedded in check-ins and tips.
type EmbeddedVenue struct {
	ID       string         `json:"id"`
	Name     *string        `json:"name,omitempty"`
	URL      *string        `json:"url,omitempty"`
	Location *VenueLocation `json:"location,omitempty"`
}

type VenueLocation struct {
	Address *string  `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type PhotosDocument struct {
	Items []PhotoItem `json:"items"`
}

type PhotoItem struct {
	ID             string      `json:"id"`
	CreatedAt      json.Number `json:"createdAt"`
	FullURL        *string     `json:"fullUrl,omitempty"`
	Width          *int        `json:"width,omitempty"`
	Height         *int        `json:"height,omitempty"`
	RelatedItemURL *string     `json:"relatedItemUrl,omitempty"`
}

type UsersDocument struct {
	Self    *SelfUser   `json:"self,omitempty"`
	Friends FriendsList `json:"friends"`
}

type FriendsList struct {
	Items []FriendItem `json:"items"`
}

type SelfUser struct {
	ID          string      `json:"id"`
	FirstName   *string     `json:"firstName,omitempty"`
	LastName    *string     `json:"lastName,omitempty"`
	Email       *string     `json:"email,omitempty"`
	Gender      *string     `json:"gender,omitempty"`
	HomeCity    *string     `json:"homeCity,omitempty"`
	Bio         *string     `json:"bio,omitempty"`
	Contact     UserContact `json:"contact"`
	Photo       UserPhoto   `json:"photo"`
	Birthday    *int64      `json:"birthday,omitempty"`
	DisplayName *string     `json:"displayName,omitempty"`
	Tips        CountField  `json:"tips"`
	Lists       ListsField  `json:"lists"`
}

type UserContact struct {
	Phone *string `json:"phone,omitempty"`
	// The export encodes these booleans as the strings "true"/"false".
	VerifiedPhone string  `json:"verifiedPhone,omitempty"`
	VerifiedEmail string  `json:"verifiedEmail,omitempty"`
	Facebook      *string `json:"facebook,omitempty"`
}

type UserPhoto struct {
	Prefix *string `json:"prefix,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

type CountField struct {
	Count *int `json:"count,omitempty"`
}

type ListsField struct {
	Groups []CountField `json:"groups,omitempty"`
}

type FriendItem struct {
	ID           string  `json:"id"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	CanonicalURL *string `json:"canonicalUrl,omitempty"`
}

type VisitsDocument struct {
	Items []VisitItem `json:"items"`
}

type VisitItem struct {
	ID           string      `json:"id"`
	UserID       *string     `json:"userId,omitempty"`
	TimeArrived  json.Number `json:"timeArrived"`
	TimeDeparted json.Number `json:"timeDeparted"`
	OS           *string     `json:"os,omitempty"`
	OSVersion    *string     `json:"osVersion,omitempty"`
	DeviceModel  *string     `json:"deviceModel,omitempty"`
	IsTraveling  bool        `json:"isTraveling,omitempty"`
	Latitude     *float64    `json:"latitude,omitempty"`
	Longitude    *float64    `json:"longitude,omitempty"`
	City         *string     `json:"city,omitempty"`
	State        *string     `json:"state,omitempty"`
	CountryCode  *string     `json:"countryCode,omitempty"`
	LocationType *string     `json:"locationType,omitempty"`
}

type UnconfirmedVisitsDocument struct {
	Items []UnconfirmedVisitItem `json:"items"`
}

type UnconfirmedVisitItem struct {
	ID        string         `json:"id"`
	StartTime json.Number    `json:"startTime"`
	EndTime   json.Number    `json:"endTime"`
	VenueID   *string        `json:"venueId,omitempty"`
	Lat       *float64       `json:"lat,omitempty"`
	Lng       *float64       `json:"lng,omitempty"`
	Venue     *EmbeddedVenue `json:"venue,omitempty"`
}

type TipsDocument struct {
	Items []TipItem `json:"items"`
}

type TipItem struct {
	ID            string         `json:"id"`
	CreatedAt     json.Number    `json:"createdAt"`
	Text          *string        `json:"text,omitempty"`
	Type          *string        `json:"type,omitempty"`
	CanonicalURL  *string        `json:"canonicalUrl,omitempty"`
	ViewCount     *int           `json:"viewCount,omitempty"`
	AgreeCount    *int           `json:"agreeCount,omitempty"`
	DisagreeCount *int           `json:"disagreeCount,omitempty"`
	User          *UserRef       `json:"user,omitempty"`
	Venue         *EmbeddedVenue `json:"venue,omitempty"`
}

type UserRef struct {
	ID string `json:"id"`
}

type CommentsDocument struct {
	Items []CommentItem `json:"items"`
}

type CommentItem struct {
	UserID  *string     `json:"userId,omitempty"`
	Time    json.Number `json:"time"`
	Comment *string     `json:"comment,omitempty"`
}

type VenueRatingsDocument struct {
	VenueLikes []VenueLikeItem `json:"venueLikes"`
}

type VenueLikeItem struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
	URL  *string `json:"url,omitempty"`
}

type ExpertiseDocument struct {
	Items []ExpertiseItem `json:"items"`
}

type ExpertiseItem struct {
	ID           string      `json:"id"`
	Type         *string     `json:"type,omitempty"`
	Timestamp    json.Number `json:"timestamp"`
	LastModified json.Number `json:"lastModified"`
}

type PlansDocument struct {
	Items []PlanItem `json:"items"`
}

type PlanItem struct {
	ID           string      `json:"id"`
	UserID       *string     `json:"userId,omitempty"`
	CreatedAt    json.Number `json:"createdAt"`
	ModifiedTime json.Number `json:"modifiedTime"`
	IsBroadcast  bool        `json:"isBroadcast,omitempty"`
	Type         *string     `json:"type,omitempty"`
}

type SharesDocument struct {
	Items []ShareItem `json:"items"`
}

type ShareItem struct {
	ID       string      `json:"id"`
	SharedAt json.Number `json:"sharedAt"`
	State    *string     `json:"state,omitempty"`
	Type     *string     `json:"type,omitempty"`
}
