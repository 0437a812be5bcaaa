package controllers

import (
	"net/http"

	"techstock-backend/models"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StateController struct {
	DB *gorm.DB
}

// NewStateController creates a new state controller
func NewStateController(db *gorm.DB) *StateController {
	return &StateController{DB: db}
}

// StateRequest represents the create/update state request
type StateRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetStates godoc
// @Summary Get all condition states
// @Tags states
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.State
// @Router /api/states [get]
func (sc *StateController) GetStates(c *gin.Context) {
	var states []models.State
	if err := sc.DB.Order("id ASC").Find(&states).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve states", err.Error())
		return
	}

	c.JSON(http.StatusOK, states)
}

// GetState godoc
// @Summary Get state by ID
// @Tags states
// @Produce json
// @Security BearerAuth
// @Param id path int true "State ID"
// @Success 200 {object} models.State
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/states/{id} [get]
func (sc *StateController) GetState(c *gin.Context) {
	var state models.State
	if err := sc.DB.First(&state, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "State not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, state)
}

// CreateState godoc
// @Summary Create new state
// @Tags states
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StateRequest true "Create state request"
// @Success 201 {object} models.State
// @Failure 400 {object} utilities.MessageResponse
// @Router /api/states [post]
func (sc *StateController) CreateState(c *gin.Context) {
	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	state := models.State{Status: req.Status}
	if err := sc.DB.Create(&state).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create state", err.Error())
		return
	}

	c.JSON(http.StatusCreated, state)
}

// UpdateState godoc
// @Summary Update state
// @Tags states
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "State ID"
// @Param request body StateRequest true "Update state request"
// @Success 200 {object} models.State
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/states/{id} [put]
func (sc *StateController) UpdateState(c *gin.Context) {
	var state models.State
	if err := sc.DB.First(&state, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "State not found", err.Error())
		return
	}

	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	state.Status = req.Status
	if err := sc.DB.Save(&state).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update state", err.Error())
		return
	}

	c.JSON(http.StatusOK, state)
}

// DeleteState godoc
// @Summary Delete state
// @Tags states
// @Produce json
// @Security BearerAuth
// @Param id path int true "State ID"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/states/{id} [delete]
func (sc *StateController) DeleteState(c *gin.Context) {
	var state models.State
	if err := sc.DB.First(&state, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "State not found", err.Error())
		return
	}

	if err := sc.DB.Delete(&state).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete state", err.Error())
		return
	}

	utilities.SuccessMessage(c, http.StatusOK, "State deleted successfully.")
}
