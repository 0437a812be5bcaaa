package routes

import (
	"techstock-backend/config"
	"techstock-backend/controllers"
	"techstock-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserManagerRoutes configures user administration routes (Admin only)
func SetupUserManagerRoutes(api *gin.RouterGroup, cfg *config.Config, userManagerController *controllers.UserManagerController) {
	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg))
	users.Use(middleware.RequireAdminRoles())
	{
		users.GET("", userManagerController.GetUsers)              // List users with roles
		users.GET("/:userName", userManagerController.GetUser)     // Get user by username
		users.POST("/manageroles", userManagerController.ManageRoles) // Replace a user's role set
	}
}
