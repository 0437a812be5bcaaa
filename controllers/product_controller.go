package controllers

import (
	"net/http"
	"strconv"

	"techstock-backend/models"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

// NewProductController creates a new product controller
func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// ProductRequest represents the create/update product request
type ProductRequest struct {
	Name         string `json:"name" binding:"required"`
	SerialNumber string `json:"serialNumber" binding:"required"`
	TypeID       uint   `json:"typeId" binding:"required"`
	SupplierID   uint   `json:"supplierId" binding:"required"`
}

// Special userId filter values
const (
	FilterNotAssigned = "NotAssigned"
	FilterAllUsers    = "All"
)

// GetProducts godoc
// @Summary Get all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProductResponse
// @Failure 401 {object} utilities.MessageResponse
// @Router /api/products [get]
func (pc *ProductController) GetProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.
		Preload("TypeArticle").
		Preload("Supplier").
		Preload("AssignedUser").
		Order("id ASC").
		Find(&products).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve products", err.Error())
		return
	}

	responses := make([]models.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = product.ToProductResponse()
	}

	c.JSON(http.StatusOK, responses)
}

// FilterProducts godoc
// @Summary Filter products
// @Description Filter products by name/serial substring, exact type/supplier and
// assignment status. userId accepts "NotAssigned", "All" or a user ID.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name substring"
// @Param serialNumber query string false "Serial number substring"
// @Param typeId query int false "Type ID"
// @Param supplierId query int false "Supplier ID"
// @Param userId query string false "User ID, NotAssigned or All"
// @Success 200 {array} models.ProductResponse
// @Failure 400 {object} utilities.MessageResponse
// @Router /api/products/filter [get]
func (pc *ProductController) FilterProducts(c *gin.Context) {
	query := pc.DB.Model(&models.Product{}).
		Preload("TypeArticle").
		Preload("Supplier").
		Preload("AssignedUser")

	if name := c.Query("name"); name != "" {
		query = query.Where("LOWER(products.name) LIKE LOWER(?)", "%"+name+"%")
	}

	if serial := c.Query("serialNumber"); serial != "" {
		query = query.Where("LOWER(products.serial_number) LIKE LOWER(?)", "%"+serial+"%")
	}

	if typeParam := c.Query("typeId"); typeParam != "" {
		typeID, err := strconv.Atoi(typeParam)
		if err != nil {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Invalid typeId", err.Error())
			return
		}
		query = query.Where("products.type_id = ?", typeID)
	}

	if supplierParam := c.Query("supplierId"); supplierParam != "" {
		supplierID, err := strconv.Atoi(supplierParam)
		if err != nil {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Invalid supplierId", err.Error())
			return
		}
		query = query.Where("products.supplier_id = ?", supplierID)
	}

	switch userParam := c.Query("userId"); userParam {
	case "", FilterAllUsers:
		// no assignment filter
	case FilterNotAssigned:
		query = query.
			Joins("LEFT JOIN assignments ON assignments.product_id = products.id").
			Where("assignments.id IS NULL")
	default:
		userID, err := strconv.Atoi(userParam)
		if err != nil {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Invalid userId", err.Error())
			return
		}
		query = query.
			Joins("JOIN assignments ON assignments.product_id = products.id").
			Where("assignments.user_id = ?", userID)
	}

	var products []models.Product
	if err := query.Order("products.id ASC").Find(&products).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to filter products", err.Error())
		return
	}

	responses := make([]models.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = product.ToProductResponse()
	}

	c.JSON(http.StatusOK, responses)
}

// GetProduct godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/products/{id} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	var product models.Product
	if err := pc.DB.
		Preload("TypeArticle").
		Preload("Supplier").
		Preload("AssignedUser").
		First(&product, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Product not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, product.ToProductResponse())
}

// CreateProduct godoc
// @Summary Create new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Create product request"
// @Success 201 {object} models.ProductResponse
// @Failure 400 {object} utilities.MessageResponse
// @Router /api/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	if ok := pc.checkReferences(c, req.TypeID, req.SupplierID); !ok {
		return
	}

	product := models.Product{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		TypeID:       req.TypeID,
		SupplierID:   req.SupplierID,
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create product", err.Error())
		return
	}

	pc.DB.Preload("TypeArticle").Preload("Supplier").First(&product, product.ID)

	c.JSON(http.StatusCreated, product.ToProductResponse())
}

// UpdateProduct godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Update product request"
// @Success 200 {object} models.ProductResponse
// @Failure 400 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := pc.DB.First(&product, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Product not found", err.Error())
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	if ok := pc.checkReferences(c, req.TypeID, req.SupplierID); !ok {
		return
	}

	product.Name = req.Name
	product.SerialNumber = req.SerialNumber
	product.TypeID = req.TypeID
	product.SupplierID = req.SupplierID

	if err := pc.DB.Save(&product).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update product", err.Error())
		return
	}

	pc.DB.Preload("TypeArticle").Preload("Supplier").Preload("AssignedUser").First(&product, product.ID)

	c.JSON(http.StatusOK, product.ToProductResponse())
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete a product. Its assignment record is removed in the same transaction.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := pc.DB.First(&product, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Product not found", err.Error())
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		// Cascade: the ledger row goes with the product
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete product", err.Error())
		return
	}

	utilities.SuccessMessage(c, http.StatusOK, "Product deleted successfully.")
}

// checkReferences validates that the referenced type and supplier exist.
// Writes a 400 response naming the missing reference and returns false otherwise.
func (pc *ProductController) checkReferences(c *gin.Context, typeID, supplierID uint) bool {
	var typeArticle models.TypeArticle
	if err := pc.DB.First(&typeArticle, typeID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Type not found.", err.Error())
		return false
	}

	var supplier models.Supplier
	if err := pc.DB.First(&supplier, supplierID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Supplier not found.", err.Error())
		return false
	}

	return true
}
