package controllers

import (
	"net/http"

	"techstock-backend/models"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatisticsController serves read-only derived metrics. Nothing is cached;
// every call recomputes from the catalog and the ledger.
type StatisticsController struct {
	DB *gorm.DB
}

// NewStatisticsController creates a new statistics controller
func NewStatisticsController(db *gorm.DB) *StatisticsController {
	return &StatisticsController{DB: db}
}

// StatisticsResponse represents the product count metrics
type StatisticsResponse struct {
	TotalProducts      int64 `json:"totalProducts"`
	AssignedProducts   int64 `json:"assignedProducts"`
	UnassignedProducts int64 `json:"unassignedProducts"`
}

// UserAssignmentCount represents assignment counts per user
type UserAssignmentCount struct {
	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
	Count    int64  `json:"count"`
}

// GetStatistics godoc
// @Summary Get product statistics
// @Description Get total, assigned and unassigned product counts
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatisticsResponse
// @Router /api/statistics [get]
func (sc *StatisticsController) GetStatistics(c *gin.Context) {
	var totalProducts int64
	if err := sc.DB.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute statistics", err.Error())
		return
	}

	var assignedProducts int64
	if err := sc.DB.Model(&models.Assignment{}).Count(&assignedProducts).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute statistics", err.Error())
		return
	}

	c.JSON(http.StatusOK, StatisticsResponse{
		TotalProducts:      totalProducts,
		AssignedProducts:   assignedProducts,
		UnassignedProducts: totalProducts - assignedProducts,
	})
}

// GetUserStatistics godoc
// @Summary Get per-user assignment counts
// @Description Get assignment counts grouped by user, ordered descending
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserAssignmentCount
// @Router /api/statistics/users [get]
func (sc *StatisticsController) GetUserStatistics(c *gin.Context) {
	var counts []UserAssignmentCount
	if err := sc.DB.Model(&models.Assignment{}).
		Select("assignments.user_id AS user_id, users.user_name AS user_name, COUNT(*) AS count").
		Joins("JOIN users ON users.id = assignments.user_id").
		Group("assignments.user_id, users.user_name").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute user statistics", err.Error())
		return
	}

	c.JSON(http.StatusOK, counts)
}
