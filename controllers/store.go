package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/utils"
)

// openStore opens a fresh read handle for one request. When the store has
// never been ingested it answers 404 on the caller's behalf and returns
// ok=false.
func openStore(c *gin.Context, store config.Store) (*gorm.DB, bool) {
	db, err := store.Open()
	if err != nil {
		if errors.Is(err, config.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Database not found. Please run the importer first."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return db, true
}

// loadGeoCheckins returns every check-in whose venue has coordinates,
// ordered by timestamp ascending. Rows whose stored timestamp does not parse
// are dropped silently.
func loadGeoCheckins(db *gorm.DB) ([]CheckinGeo, error) {
	type geoRow struct {
		ID        string
		CreatedAt *string
		Shout     *string
		VenueName *string
		Lat       *float64
		Lng       *float64
	}
	var rows []geoRow
	err := db.Table("checkins").
		Select("checkins.id, checkins.created_at, checkins.shout, venues.name AS venue_name, venues.lat, venues.lng").
		Joins("LEFT JOIN venues ON venues.id = checkins.venue_id").
		Where("venues.lat IS NOT NULL AND venues.lng IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	results := make([]CheckinGeo, 0, len(rows))
	for _, row := range rows {
		ts, ok := utils.ParseEpoch(row.CreatedAt)
		if !ok {
			continue
		}
		results = append(results, CheckinGeo{
			ID:        row.ID,
			VenueName: row.VenueName,
			Lat:       *row.Lat,
			Lng:       *row.Lng,
			Timestamp: ts,
			Shout:     row.Shout,
		})
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Timestamp < results[b].Timestamp })
	return results, nil
}
