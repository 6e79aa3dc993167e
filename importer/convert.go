package importer

import (
	"path/filepath"
	"regexp"

	"github.com/swarmtrail/api-go/models"
	"github.com/swarmtrail/api-go/types"
	"github.com/swarmtrail/api-go/utils"
)

// checkinIDPattern extracts the check-in id a photo's related-item URL
// embeds, e.g. ".../checkin/4f1c9f2ce4b0" -> "4f1c9f2ce4b0".
var checkinIDPattern = regexp.MustCompile(`checkin/([a-f0-9]+)`)

func newCheckin(item types.CheckinItem) models.Checkin {
	rec := models.Checkin{
		ID:        item.ID,
		CreatedAt: utils.EpochString(item.CreatedAt),
		Shout:     item.Shout,
		TimeZone:  item.TimeZone,
	}
	if item.Venue != nil && item.Venue.ID != "" {
		id := item.Venue.ID
		rec.VenueID = &id
	}
	return rec
}

func newPhoto(item types.PhotoItem, pixDir string) models.Photo {
	rec := models.Photo{
		ID:        item.ID,
		CreatedAt: utils.EpochString(item.CreatedAt),
		FullURL:   item.FullURL,
		// Downloaded photos are stored by id, always as JPEG.
		LocalPath: filepath.Join(pixDir, item.ID+".jpg"),
		Width:     item.Width,
		Height:    item.Height,
	}
	if item.RelatedItemURL != nil {
		if m := checkinIDPattern.FindStringSubmatch(*item.RelatedItemURL); m != nil {
			rec.CheckinID = &m[1]
		}
	}
	return rec
}

func newUser(self types.SelfUser) models.User {
	rec := models.User{
		ID:            self.ID,
		FirstName:     self.FirstName,
		LastName:      self.LastName,
		Email:         self.Email,
		Gender:        self.Gender,
		HomeCity:      self.HomeCity,
		Bio:           self.Bio,
		Phone:         self.Contact.Phone,
		VerifiedPhone: self.Contact.VerifiedPhone == "true",
		VerifiedEmail: self.Contact.VerifiedEmail == "true",
		Facebook:      self.Contact.Facebook,
		PhotoPrefix:   self.Photo.Prefix,
		PhotoSuffix:   self.Photo.Suffix,
		Birthday:      self.Birthday,
		DisplayName:   self.DisplayName,
		TipsCount:     self.Tips.Count,
	}
	if len(self.Lists.Groups) > 0 {
		rec.ListsCount = self.Lists.Groups[0].Count
	}
	return rec
}

func newFriend(userID string, item types.FriendItem) models.Friend {
	return models.Friend{
		UserID:             userID,
		FriendID:           item.ID,
		FriendFirstName:    item.FirstName,
		FriendLastName:     item.LastName,
		FriendCanonicalURL: item.CanonicalURL,
	}
}

func newVisit(item types.VisitItem) models.Visit {
	return models.Visit{
		ID:           item.ID,
		UserID:       item.UserID,
		TimeArrived:  utils.EpochString(item.TimeArrived),
		TimeDeparted: utils.EpochString(item.TimeDeparted),
		OS:           item.OS,
		OSVersion:    item.OSVersion,
		DeviceModel:  item.DeviceModel,
		IsTraveling:  item.IsTraveling,
		Latitude:     item.Latitude,
		Longitude:    item.Longitude,
		City:         item.City,
		State:        item.State,
		CountryCode:  item.CountryCode,
		LocationType: item.LocationType,
	}
}

func newUnconfirmedVisit(item types.UnconfirmedVisitItem) models.UnconfirmedVisit {
	return models.UnconfirmedVisit{
		ID:        item.ID,
		StartTime: utils.EpochString(item.StartTime),
		EndTime:   utils.EpochString(item.EndTime),
		VenueID:   item.VenueID,
		Lat:       item.Lat,
		Lng:       item.Lng,
	}
}

func newTip(item types.TipItem) models.Tip {
	rec := models.Tip{
		ID:            item.ID,
		CreatedAt:     utils.EpochString(item.CreatedAt),
		Text:          item.Text,
		Type:          item.Type,
		CanonicalURL:  item.CanonicalURL,
		ViewCount:     item.ViewCount,
		AgreeCount:    item.AgreeCount,
		DisagreeCount: item.DisagreeCount,
	}
	if item.User != nil && item.User.ID != "" {
		id := item.User.ID
		rec.UserID = &id
	}
	if item.Venue != nil && item.Venue.ID != "" {
		id := item.Venue.ID
		rec.VenueID = &id
	}
	return rec
}

func newComment(item types.CommentItem) models.Comment {
	return models.Comment{
		UserID:  item.UserID,
		Time:    utils.EpochString(item.Time),
		Comment: item.Comment,
	}
}

func newVenueRating(item types.VenueLikeItem) models.VenueRating {
	return models.VenueRating{ID: item.ID, Name: item.Name, URL: item.URL}
}

func newExpertise(item types.ExpertiseItem) models.Expertise {
	return models.Expertise{
		ID:           item.ID,
		Type:         item.Type,
		Timestamp:    utils.EpochString(item.Timestamp),
		LastModified: utils.EpochString(item.LastModified),
	}
}

func newPlan(item types.PlanItem) models.Plan {
	return models.Plan{
		ID:           item.ID,
		UserID:       item.UserID,
		CreatedAt:    utils.EpochString(item.CreatedAt),
		ModifiedTime: utils.EpochString(item.ModifiedTime),
		IsBroadcast:  item.IsBroadcast,
		Type:         item.Type,
	}
}

func newShare(item types.ShareItem) models.Share {
	return models.Share{
		ID:       item.ID,
		SharedAt: utils.EpochString(item.SharedAt),
		State:    item.State,
		Type:     item.Type,
	}
}
