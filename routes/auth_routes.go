package routes

import (
	"techstock-backend/config"
	"techstock-backend/controllers"
	"techstock-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures authentication routes
func SetupAuthRoutes(api *gin.RouterGroup, cfg *config.Config, authController *controllers.AuthController) {
	auth := api.Group("/auth")
	{
		// Public auth routes
		auth.POST("/register", authController.Register) // User registration
		auth.POST("/login", authController.Login)       // User login

		// Authenticated auth routes
		auth.GET("/validatetoken", middleware.AuthMiddleware(cfg), authController.ValidateToken)
		auth.GET("/profile", middleware.AuthMiddleware(cfg), authController.GetProfile)
		auth.POST("/logout", middleware.AuthMiddleware(cfg), authController.Logout)
	}
}
