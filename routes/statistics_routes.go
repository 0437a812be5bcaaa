package routes

import (
	"techstock-backend/config"
	"techstock-backend/controllers"
	"techstock-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupStatisticsRoutes configures statistics routes
func SetupStatisticsRoutes(api *gin.RouterGroup, cfg *config.Config, statisticsController *controllers.StatisticsController) {
	statistics := api.Group("/statistics")
	statistics.Use(middleware.AuthMiddleware(cfg))
	{
		statistics.GET("", statisticsController.GetStatistics)           // Product counts
		statistics.GET("/users", statisticsController.GetUserStatistics) // Per-user assignment counts
	}
}
