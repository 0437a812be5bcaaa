package controllers

import (
	"net/http"

	"techstock-backend/config"
	"techstock-backend/locales"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
)

// TranslationController serves the language list and translation maps.
// The language set is fixed at startup; there is no mutable registry.
type TranslationController struct {
	Languages      []config.Language
	DefaultCulture string
}

// NewTranslationController creates a new translation controller
func NewTranslationController(cfg *config.Config) *TranslationController {
	return &TranslationController{
		Languages:      cfg.Languages,
		DefaultCulture: cfg.DefaultCulture,
	}
}

// GetLanguages godoc
// @Summary Get supported languages
// @Tags translations
// @Produce json
// @Success 200 {array} config.Language
// @Router /api/languages [get]
func (tc *TranslationController) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Languages)
}

// GetTranslations godoc
// @Summary Get translations for a culture
// @Description Get the flat key→text translation map for a supported culture code
// @Tags translations
// @Produce json
// @Param culture query string false "Culture code (en, fr, nl)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utilities.MessageResponse
// @Router /api/translations [get]
func (tc *TranslationController) GetTranslations(c *gin.Context) {
	culture := c.DefaultQuery("culture", tc.DefaultCulture)

	if !tc.supported(culture) {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Unsupported culture code", "culture: "+culture)
		return
	}

	translations, err := locales.Load(culture)
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to load translations", err.Error())
		return
	}

	c.JSON(http.StatusOK, translations)
}

func (tc *TranslationController) supported(culture string) bool {
	for _, language := range tc.Languages {
		if language.ID == culture {
			return true
		}
	}
	return false
}
