package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/swarmtrail/api-go/controllers"
)

func SetupStatsRoutes(api *gin.RouterGroup, statsController *controllers.StatsController) {
	api.GET("/stats", statsController.GetStats)
}
