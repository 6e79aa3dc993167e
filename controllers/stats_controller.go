package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/models"
	"github.com/swarmtrail/api-go/utils"
)

type StatsController struct {
	Store config.Store
}

func NewStatsController(store config.Store) *StatsController {
	return &StatsController{Store: store}
}

// GetStats godoc
// @Summary Aggregate statistics over the ingested export
// @Tags stats
// @Produce json
// @Success 200 {object} controllers.StatSummary
// @Router /stats [get]
func (sc *StatsController) GetStats(c *gin.Context) {
	db, ok := openStore(c, sc.Store)
	if !ok {
		return
	}
	defer config.Close(db)

	var summary StatSummary
	if err := db.Model(&models.Checkin{}).Count(&summary.TotalCheckins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := db.Model(&models.Checkin{}).Distinct("venue_id").Where("venue_id IS NOT NULL").
		Count(&summary.UniqueVenues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var topCity string
	err := db.Model(&models.Visit{}).
		Select("city").
		Where("city IS NOT NULL").
		Group("city").
		Order("count(*) DESC").
		Limit(1).
		Scan(&topCity).Error
	if err == nil && topCity != "" {
		summary.TopCity = &topCity
	}

	geo, err := loadGeoCheckins(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for n := 1; n < len(geo); n++ {
		summary.TotalDistanceKm += utils.HaversineKm(geo[n-1].Lat, geo[n-1].Lng, geo[n].Lat, geo[n].Lng)
	}

	c.JSON(http.StatusOK, summary)
}
