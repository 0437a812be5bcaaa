package routes

import (
	"techstock-backend/config"
	"techstock-backend/controllers"
	"techstock-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupMaterialRoutes configures assignment ledger routes
func SetupMaterialRoutes(api *gin.RouterGroup, cfg *config.Config, materialController *controllers.MaterialController) {
	material := api.Group("/materialmanagement")
	material.Use(middleware.AuthMiddleware(cfg))
	{
		// Self-service routes for all authenticated users
		material.GET("/user", materialController.GetMyAssignments) // Own assignments
		material.POST("/sign", materialController.SignProduct)     // Sign own assignment

		// Ledger administration (Support and Admin)
		materialAdmin := material.Group("")
		materialAdmin.Use(middleware.RequireSupportRoles())
		{
			materialAdmin.GET("", materialController.GetAll)
			materialAdmin.GET("/:id", materialController.GetByID)
			materialAdmin.POST("/assign", materialController.AssignProduct)
			materialAdmin.DELETE("/:id", materialController.Delete)
			materialAdmin.DELETE("/product/:productId", materialController.UnassignProduct)
		}
	}
}
