package routes

import (
	"techstock-backend/config"
	"techstock-backend/controllers"
	"techstock-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupProductRoutes configures product-related routes
func SetupProductRoutes(api *gin.RouterGroup, cfg *config.Config, productController *controllers.ProductController) {
	product := api.Group("/products")
	product.Use(middleware.AuthMiddleware(cfg))
	{
		// Read routes for all authenticated users
		product.GET("", productController.GetProducts)
		product.GET("/filter", productController.FilterProducts)
		product.GET("/:id", productController.GetProduct)

		// Catalog management (Support and Admin)
		productAdmin := product.Group("")
		productAdmin.Use(middleware.RequireSupportRoles())
		{
			productAdmin.POST("", productController.CreateProduct)
			productAdmin.PUT("/:id", productController.UpdateProduct)
			productAdmin.DELETE("/:id", productController.DeleteProduct)
		}
	}
}
