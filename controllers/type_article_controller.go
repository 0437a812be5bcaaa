package controllers

import (
	"net/http"

	"techstock-backend/models"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TypeArticleController struct {
	DB *gorm.DB
}

// NewTypeArticleController creates a new type article controller
func NewTypeArticleController(db *gorm.DB) *TypeArticleController {
	return &TypeArticleController{DB: db}
}

// TypeArticleRequest represents the create/update type article request
type TypeArticleRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetTypeArticles godoc
// @Summary Get all type articles
// @Tags typearticles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TypeArticle
// @Router /api/typearticles [get]
func (tc *TypeArticleController) GetTypeArticles(c *gin.Context) {
	var types []models.TypeArticle
	if err := tc.DB.Order("id ASC").Find(&types).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve type articles", err.Error())
		return
	}

	c.JSON(http.StatusOK, types)
}

// GetTypeArticle godoc
// @Summary Get type article by ID
// @Tags typearticles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type article ID"
// @Success 200 {object} models.TypeArticle
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/typearticles/{id} [get]
func (tc *TypeArticleController) GetTypeArticle(c *gin.Context) {
	var typeArticle models.TypeArticle
	if err := tc.DB.First(&typeArticle, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Type article not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, typeArticle)
}

// CreateTypeArticle godoc
// @Summary Create new type article
// @Tags typearticles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TypeArticleRequest true "Create type article request"
// @Success 201 {object} models.TypeArticle
// @Failure 400 {object} utilities.MessageResponse
// @Router /api/typearticles [post]
func (tc *TypeArticleController) CreateTypeArticle(c *gin.Context) {
	var req TypeArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	typeArticle := models.TypeArticle{Name: req.Name}
	if err := tc.DB.Create(&typeArticle).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create type article", err.Error())
		return
	}

	c.JSON(http.StatusCreated, typeArticle)
}

// UpdateTypeArticle godoc
// @Summary Update type article
// @Tags typearticles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type article ID"
// @Param request body TypeArticleRequest true "Update type article request"
// @Success 200 {object} models.TypeArticle
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/typearticles/{id} [put]
func (tc *TypeArticleController) UpdateTypeArticle(c *gin.Context) {
	var typeArticle models.TypeArticle
	if err := tc.DB.First(&typeArticle, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Type article not found", err.Error())
		return
	}

	var req TypeArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	typeArticle.Name = req.Name
	if err := tc.DB.Save(&typeArticle).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update type article", err.Error())
		return
	}

	c.JSON(http.StatusOK, typeArticle)
}

// DeleteTypeArticle godoc
// @Summary Delete type article
// @Tags typearticles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type article ID"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/typearticles/{id} [delete]
func (tc *TypeArticleController) DeleteTypeArticle(c *gin.Context) {
	var typeArticle models.TypeArticle
	if err := tc.DB.First(&typeArticle, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Type article not found", err.Error())
		return
	}

	if err := tc.DB.Delete(&typeArticle).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete type article", err.Error())
		return
	}

	utilities.SuccessMessage(c, http.StatusOK, "Type article deleted successfully.")
}
