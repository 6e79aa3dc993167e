package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/swarmtrail/api-go/controllers"
)

func SetupCheckinRoutes(api *gin.RouterGroup, checkinController *controllers.CheckinController) {
	api.GET("/checkins/geo", checkinController.GetCheckinsGeo)
	api.GET("/timeline/weekly", checkinController.GetWeeklyTimeline)
}
