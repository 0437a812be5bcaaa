package routes

import (
	"techstock-backend/controllers"

	"github.com/gin-gonic/gin"
)

// SetupTranslationRoutes configures localization routes (public: the login screen needs them)
func SetupTranslationRoutes(api *gin.RouterGroup, translationController *controllers.TranslationController) {
	api.GET("/languages", translationController.GetLanguages)
	api.GET("/translations", translationController.GetTranslations)
}
