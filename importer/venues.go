package importer

import (
	"strings"

	"gorm.io/gorm"

	"github.com/swarmtrail/api-go/models"
	"github.com/swarmtrail/api-go/types"
)

// VenueObservation is one partial sighting of a venue from a source document.
// A nil field means the source did not supply it, as opposed to supplying an
// empty value.
type VenueObservation struct {
	ID      string
	Name    *string
	Address *string
	Lat     *float64
	Lng     *float64
	URL     *string
}

// VenueOutcome reports what applying an observation did to the store.
type VenueOutcome int

const (
	VenueUnchanged VenueOutcome = iota
	VenueInserted
	VenueFilled
)

// Reconciler merges partial venue observations into one canonical row per
// venue id. The export has no authoritative venue catalog: identity is the
// shared id appearing across documents, and a complete row emerges only by
// unioning sightings. The merge policy is first writer wins per field: an
// observation may fill a NULL field but never replaces a stored value, so
// conflicting sightings keep whichever value arrived first.
type Reconciler struct{}

// Fields subject to fill-in updates. Address is set at insert only: check-ins
// are the one family that carries it, and it is never re-filled afterwards.
var venueFillColumns = []string{"name", "lat", "lng", "url"}

// Apply resolves an observation against the store. A new id is inserted with
// exactly the observed fields; an existing row gets a fill-in update on the
// fields the observation supplies.
func (Reconciler) Apply(tx *gorm.DB, obs VenueObservation) (VenueOutcome, error) {
	if obs.ID == "" {
		return VenueUnchanged, nil
	}
	venue := models.Venue{
		ID:      obs.ID,
		Name:    obs.Name,
		Address: obs.Address,
		Lat:     obs.Lat,
		Lng:     obs.Lng,
		URL:     obs.URL,
	}
	inserted, err := insertIgnore(tx, &venue)
	if err != nil {
		return VenueUnchanged, err
	}
	if inserted {
		return VenueInserted, nil
	}
	return fillIn(tx, obs)
}

// fillIn writes the observed values into currently-NULL columns of the
// existing row. COALESCE keeps the stored value when one is present, and the
// guard restricts the update to rows where at least one targeted column is
// still NULL so an untouched row reports zero affected rows.
func fillIn(tx *gorm.DB, obs VenueObservation) (VenueOutcome, error) {
	assign := map[string]any{}
	var guards []string
	supplied := map[string]any{
		"name": nil, "lat": nil, "lng": nil, "url": nil,
	}
	if obs.Name != nil {
		supplied["name"] = *obs.Name
	}
	if obs.Lat != nil {
		supplied["lat"] = *obs.Lat
	}
	if obs.Lng != nil {
		supplied["lng"] = *obs.Lng
	}
	if obs.URL != nil {
		supplied["url"] = *obs.URL
	}
	for _, col := range venueFillColumns {
		val := supplied[col]
		if val == nil {
			continue
		}
		assign[col] = gorm.Expr("COALESCE("+col+", ?)", val)
		guards = append(guards, col+" IS NULL")
	}
	if len(assign) == 0 {
		return VenueUnchanged, nil
	}
	res := tx.Model(&models.Venue{}).
		Where("id = ?", obs.ID).
		Where(strings.Join(guards, " OR ")).
		Updates(assign)
	if res.Error != nil {
		return VenueUnchanged, res.Error
	}
	if res.RowsAffected > 0 {
		return VenueFilled, nil
	}
	return VenueUnchanged, nil
}

// Observation builders. Each contributing family structurally carries a
// fixed subset of venue fields; these builders are the only place that
// vocabulary is encoded.

// venueFromCheckin: name, address, lat, lng.
func venueFromCheckin(item types.CheckinItem) (VenueObservation, bool) {
	v := item.Venue
	if v == nil || v.ID == "" {
		return VenueObservation{}, false
	}
	obs := VenueObservation{ID: v.ID, Name: v.Name}
	if v.Location != nil {
		obs.Address = v.Location.Address
		obs.Lat = v.Location.Lat
		obs.Lng = v.Location.Lng
	}
	return obs, true
}

// venueFromUnconfirmedVisit: name, lat, lng, url. The venue id and the
// coordinates sit on the visit itself; name and url are nested.
func venueFromUnconfirmedVisit(item types.UnconfirmedVisitItem) (VenueObservation, bool) {
	if item.VenueID == nil || *item.VenueID == "" {
		return VenueObservation{}, false
	}
	obs := VenueObservation{ID: *item.VenueID, Lat: item.Lat, Lng: item.Lng}
	if item.Venue != nil {
		obs.Name = item.Venue.Name
		obs.URL = item.Venue.URL
	}
	return obs, true
}

// venueFromTip: name only.
func venueFromTip(item types.TipItem) (VenueObservation, bool) {
	if item.Venue == nil || item.Venue.ID == "" {
		return VenueObservation{}, false
	}
	return VenueObservation{ID: item.Venue.ID, Name: item.Venue.Name}, true
}

// venueFromRating: name and url.
func venueFromRating(item types.VenueLikeItem) (VenueObservation, bool) {
	if item.ID == "" {
		return VenueObservation{}, false
	}
	return VenueObservation{ID: item.ID, Name: item.Name, URL: item.URL}, true
}
