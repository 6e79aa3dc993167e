package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/models"
	"github.com/swarmtrail/api-go/utils"
)

func TestGetStatsStoreMissing(t *testing.T) {
	sc := NewStatsController(config.Store{Path: filepath.Join(t.TempDir(), "absent.db")})
	w := perform(t, sc.GetStats, "/api/stats")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStatsEmptyStore(t *testing.T) {
	store, _ := seedStore(t)
	sc := NewStatsController(store)
	w := perform(t, sc.GetStats, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	summary := decode[StatSummary](t, w)
	assert.Zero(t, summary.TotalCheckins)
	assert.Zero(t, summary.UniqueVenues)
	assert.Nil(t, summary.TopCity)
	assert.Zero(t, summary.TotalDistanceKm)
}

func TestGetStatsSummary(t *testing.T) {
	store, db := seedStore(t)
	require.NoError(t, db.Create(&models.Venue{ID: "v1", Lat: fptr(40.7128), Lng: fptr(-74.0060)}).Error)
	require.NoError(t, db.Create(&models.Venue{ID: "v2", Lat: fptr(51.5074), Lng: fptr(-0.1278)}).Error)
	require.NoError(t, db.Create(&models.Checkin{ID: "c1", CreatedAt: sptr("1700000000"), VenueID: sptr("v1")}).Error)
	require.NoError(t, db.Create(&models.Checkin{ID: "c2", CreatedAt: sptr("1700100000"), VenueID: sptr("v2")}).Error)
	require.NoError(t, db.Create(&models.Checkin{ID: "c3", CreatedAt: sptr("1700200000"), VenueID: sptr("v1")}).Error)
	require.NoError(t, db.Create(&models.Checkin{ID: "c4", CreatedAt: sptr("1700300000")}).Error)
	for n, city := range []string{"New York", "New York", "London"} {
		c := city
		require.NoError(t, db.Create(&models.Visit{ID: fmt.Sprintf("vi%d", n), City: &c}).Error)
	}

	sc := NewStatsController(store)
	w := perform(t, sc.GetStats, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	summary := decode[StatSummary](t, w)
	assert.Equal(t, int64(4), summary.TotalCheckins)
	assert.Equal(t, int64(2), summary.UniqueVenues)
	require.NotNil(t, summary.TopCity)
	assert.Equal(t, "New York", *summary.TopCity)

	// c1 -> c2 -> c3 walks New York -> London -> New York.
	leg := utils.HaversineKm(40.7128, -74.0060, 51.5074, -0.1278)
	assert.InDelta(t, 2*leg, summary.TotalDistanceKm, 1)
}
