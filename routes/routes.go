package routes

import (
	"net/http"

	"techstock-backend/config"
	"techstock-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the router and wires every controller
func SetupRoutes(
	cfg *config.Config,
	authController *controllers.AuthController,
	userManagerController *controllers.UserManagerController,
	productController *controllers.ProductController,
	typeArticleController *controllers.TypeArticleController,
	supplierController *controllers.SupplierController,
	stateController *controllers.StateController,
	materialController *controllers.MaterialController,
	statisticsController *controllers.StatisticsController,
	translationController *controllers.TranslationController,
) *gin.Engine {
	router := gin.Default()

	// CORS for the mobile client
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	SetupAuthRoutes(api, cfg, authController)
	SetupUserManagerRoutes(api, cfg, userManagerController)
	SetupProductRoutes(api, cfg, productController)
	SetupCatalogRoutes(api, cfg, typeArticleController, supplierController, stateController)
	SetupMaterialRoutes(api, cfg, materialController)
	SetupStatisticsRoutes(api, cfg, statisticsController)
	SetupTranslationRoutes(api, translationController)

	return router
}
