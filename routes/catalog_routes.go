package routes

import (
	"techstock-backend/config"
	"techstock-backend/controllers"
	"techstock-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures reference data routes (type articles, suppliers, states)
func SetupCatalogRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	typeArticleController *controllers.TypeArticleController,
	supplierController *controllers.SupplierController,
	stateController *controllers.StateController,
) {
	typeArticles := api.Group("/typearticles")
	typeArticles.Use(middleware.AuthMiddleware(cfg))
	{
		typeArticles.GET("", typeArticleController.GetTypeArticles)
		typeArticles.GET("/:id", typeArticleController.GetTypeArticle)

		typeAdmin := typeArticles.Group("")
		typeAdmin.Use(middleware.RequireSupportRoles())
		{
			typeAdmin.POST("", typeArticleController.CreateTypeArticle)
			typeAdmin.PUT("/:id", typeArticleController.UpdateTypeArticle)
			typeAdmin.DELETE("/:id", typeArticleController.DeleteTypeArticle)
		}
	}

	suppliers := api.Group("/suppliers")
	suppliers.Use(middleware.AuthMiddleware(cfg))
	{
		suppliers.GET("", supplierController.GetSuppliers)
		suppliers.GET("/:id", supplierController.GetSupplier)

		supplierAdmin := suppliers.Group("")
		supplierAdmin.Use(middleware.RequireSupportRoles())
		{
			supplierAdmin.POST("", supplierController.CreateSupplier)
			supplierAdmin.PUT("/:id", supplierController.UpdateSupplier)
			supplierAdmin.DELETE("/:id", supplierController.DeleteSupplier)
		}
	}

	states := api.Group("/states")
	states.Use(middleware.AuthMiddleware(cfg))
	{
		states.GET("", stateController.GetStates)
		states.GET("/:id", stateController.GetState)

		stateAdmin := states.Group("")
		stateAdmin.Use(middleware.RequireSupportRoles())
		{
			stateAdmin.POST("", stateController.CreateState)
			stateAdmin.PUT("/:id", stateController.UpdateState)
			stateAdmin.DELETE("/:id", stateController.DeleteState)
		}
	}
}
