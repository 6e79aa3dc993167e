package models

// Visit is a confirmed visit. Geography is resolved directly on the row;
// confirmed visits carry no venue reference.
type Visit struct {
	ID           string   `gorm:"primaryKey" json:"id"`
	UserID       *string  `json:"user_id"`
	TimeArrived  *string  `json:"time_arrived"`
	TimeDeparted *string  `json:"time_departed"`
	OS           *string  `json:"os"`
	OSVersion    *string  `json:"os_version"`
	DeviceModel  *string  `json:"device_model"`
	IsTraveling  bool     `json:"is_traveling"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	CountryCode  *string  `json:"country_code"`
	LocationType *string  `json:"location_type"`
}
