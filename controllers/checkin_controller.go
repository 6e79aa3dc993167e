package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/models"
	"github.com/swarmtrail/api-go/utils"
)

type CheckinController struct {
	Store config.Store
}

func NewCheckinController(store config.Store) *CheckinController {
	return &CheckinController{Store: store}
}

// GetCheckinsGeo godoc
// @Summary Check-ins with resolvable coordinates, oldest first
// @Tags checkins
// @Produce json
// @Success 200 {array} controllers.CheckinGeo
// @Router /checkins/geo [get]
func (cc *CheckinController) GetCheckinsGeo(c *gin.Context) {
	db, ok := openStore(c, cc.Store)
	if !ok {
		return
	}
	defer config.Close(db)

	results, err := loadGeoCheckins(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetWeeklyTimeline godoc
// @Summary Check-in counts bucketed by ISO week
// @Tags checkins
// @Produce json
// @Success 200 {array} controllers.WeeklyCount
// @Router /timeline/weekly [get]
func (cc *CheckinController) GetWeeklyTimeline(c *gin.Context) {
	db, ok := openStore(c, cc.Store)
	if !ok {
		return
	}
	defer config.Close(db)

	var stamps []*string
	if err := db.Model(&models.Checkin{}).Pluck("created_at", &stamps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buckets := map[string]int{}
	for _, raw := range stamps {
		ts, ok := utils.ParseEpoch(raw)
		if !ok {
			continue
		}
		week := utils.ISOWeekStart(time.Unix(ts, 0)).Format("2006-01-02")
		buckets[week]++
	}

	results := make([]WeeklyCount, 0, len(buckets))
	for week, count := range buckets {
		results = append(results, WeeklyCount{Week: week, Count: count})
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Week < results[b].Week })
	c.JSON(http.StatusOK, results)
}
