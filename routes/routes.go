package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/controllers"
)

func SetupRoutes(r *gin.Engine, store config.Store) {
	// Initialize controllers
	statsController := controllers.NewStatsController(store)
	checkinController := controllers.NewCheckinController(store)

	api := r.Group("/api")
	{
		SetupStatsRoutes(api, statsController)
		SetupCheckinRoutes(api, checkinController)
	}
}
