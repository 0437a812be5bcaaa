package controllers

import (
	"net/http"

	"techstock-backend/models"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SupplierController struct {
	DB *gorm.DB
}

// NewSupplierController creates a new supplier controller
func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

// SupplierRequest represents the create/update supplier request
type SupplierRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetSuppliers godoc
// @Summary Get all suppliers
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Supplier
// @Router /api/suppliers [get]
func (sc *SupplierController) GetSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := sc.DB.Order("id ASC").Find(&suppliers).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve suppliers", err.Error())
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

// GetSupplier godoc
// @Summary Get supplier by ID
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 200 {object} models.Supplier
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/suppliers/{id} [get]
func (sc *SupplierController) GetSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := sc.DB.First(&supplier, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Supplier not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// CreateSupplier godoc
// @Summary Create new supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SupplierRequest true "Create supplier request"
// @Success 201 {object} models.Supplier
// @Failure 400 {object} utilities.MessageResponse
// @Router /api/suppliers [post]
func (sc *SupplierController) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	supplier := models.Supplier{Name: req.Name}
	if err := sc.DB.Create(&supplier).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create supplier", err.Error())
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

// UpdateSupplier godoc
// @Summary Update supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Param request body SupplierRequest true "Update supplier request"
// @Success 200 {object} models.Supplier
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/suppliers/{id} [put]
func (sc *SupplierController) UpdateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := sc.DB.First(&supplier, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Supplier not found", err.Error())
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	supplier.Name = req.Name
	if err := sc.DB.Save(&supplier).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update supplier", err.Error())
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier godoc
// @Summary Delete supplier
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/suppliers/{id} [delete]
func (sc *SupplierController) DeleteSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := sc.DB.First(&supplier, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Supplier not found", err.Error())
		return
	}

	if err := sc.DB.Delete(&supplier).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete supplier", err.Error())
		return
	}

	utilities.SuccessMessage(c, http.StatusOK, "Supplier deleted successfully.")
}
