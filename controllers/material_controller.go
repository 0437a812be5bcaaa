package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"techstock-backend/models"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MaterialController owns the product→user assignment ledger
type MaterialController struct {
	DB *gorm.DB
}

// NewMaterialController creates a new material management controller
func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// AssignRequest represents the assign request. UserID accepts an email or a username.
type AssignRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	StateID   uint   `json:"stateId" binding:"required"`
}

// SignRequest represents the signature capture request
type SignRequest struct {
	ID        uint   `json:"id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// AssignResponse is returned after a successful assignment
type AssignResponse struct {
	Message      string `json:"message"`
	AssignmentID uint   `json:"assignmentId"`
}

// GetAll godoc
// @Summary Get all assignments
// @Description Get all assignments with product, state and user details
// @Tags materialmanagement
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AssignmentResponse
// @Failure 401 {object} utilities.MessageResponse
// @Router /api/materialmanagement [get]
func (mc *MaterialController) GetAll(c *gin.Context) {
	var assignments []models.Assignment
	if err := mc.DB.
		Preload("User.UserRoles.Role").
		Preload("State").
		Preload("Product.TypeArticle").
		Preload("Product.Supplier").
		Find(&assignments).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve assignments", err.Error())
		return
	}

	responses := make([]models.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = assignment.ToAssignmentResponse()
	}

	c.JSON(http.StatusOK, responses)
}

// GetMyAssignments godoc
// @Summary Get own assignments
// @Description Get all assignments belonging to the authenticated user
// @Tags materialmanagement
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AssignmentResponse
// @Failure 401 {object} utilities.MessageResponse
// @Router /api/materialmanagement/user [get]
func (mc *MaterialController) GetMyAssignments(c *gin.Context) {
	userID := c.GetUint("user_id")

	var assignments []models.Assignment
	if err := mc.DB.
		Preload("State").
		Preload("Product.TypeArticle").
		Preload("Product.Supplier").
		Where("user_id = ?", userID).
		Find(&assignments).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve assignments", err.Error())
		return
	}

	responses := make([]models.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = assignment.ToAssignmentResponse()
	}

	c.JSON(http.StatusOK, responses)
}

// GetByID godoc
// @Summary Get assignment by ID
// @Tags materialmanagement
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} models.AssignmentResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/materialmanagement/{id} [get]
func (mc *MaterialController) GetByID(c *gin.Context) {
	var assignment models.Assignment
	if err := mc.DB.
		Preload("User.UserRoles.Role").
		Preload("State").
		Preload("Product.TypeArticle").
		Preload("Product.Supplier").
		First(&assignment, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Assignment not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, assignment.ToAssignmentResponse())
}

// AssignProduct godoc
// @Summary Assign a product to a user
// @Description Assign a product to a user with a condition state. An existing
// assignment for the product is replaced atomically.
// @Tags materialmanagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssignRequest true "Assignment request"
// @Success 200 {object} AssignResponse
// @Failure 400 {object} utilities.MessageResponse
// @Failure 409 {object} utilities.MessageResponse
// @Router /api/materialmanagement/assign [post]
func (mc *MaterialController) AssignProduct(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	// Check the product
	var product models.Product
	if err := mc.DB.First(&product, req.ProductID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Product not found.", err.Error())
		return
	}

	// Resolve the user by email, then by username
	var user models.User
	if err := mc.DB.Where("email = ?", req.UserID).First(&user).Error; err != nil {
		if err := mc.DB.Where("user_name = ?", req.UserID).First(&user).Error; err != nil {
			utilities.ErrorResponse(c, http.StatusBadRequest, "User not found.", err.Error())
			return
		}
	}

	// Check the state
	var state models.State
	if err := mc.DB.First(&state, req.StateID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "State not found.", err.Error())
		return
	}

	// Replace semantics: remove any existing assignment for the product and
	// insert the new one in a single transaction. The unique index on
	// product_id catches concurrent assigns.
	assignment := models.Assignment{
		ProductID:      req.ProductID,
		UserID:         user.ID,
		StateID:        req.StateID,
		AssignmentDate: time.Now(),
		Signature:      "",
	}

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", req.ProductID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Product{}).Where("id = ?", req.ProductID).
			Update("assigned_user_id", user.ID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utilities.ErrorResponse(c, http.StatusConflict, "Product was assigned concurrently", err.Error())
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to assign product", err.Error())
		return
	}

	c.JSON(http.StatusOK, AssignResponse{
		Message:      "Product assigned successfully.",
		AssignmentID: assignment.ID,
	})
}

// SignProduct godoc
// @Summary Sign an assignment
// @Description Record the owning user's signature. An assignment can be signed exactly once.
// @Tags materialmanagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SignRequest true "Signature request"
// @Success 200 {object} utilities.MessageResponse
// @Failure 403 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.MessageResponse
// @Failure 409 {object} utilities.MessageResponse
// @Router /api/materialmanagement/sign [post]
func (mc *MaterialController) SignProduct(c *gin.Context) {
	var req SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var assignment models.Assignment
	if err := mc.DB.First(&assignment, req.ID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Assignment not found", err.Error())
		return
	}

	if assignment.UserID != c.GetUint("user_id") {
		utilities.ErrorResponse(c, http.StatusForbidden, "You can only sign your own assignments", "ownership mismatch")
		return
	}

	if assignment.Signed() {
		utilities.ErrorResponse(c, http.StatusConflict, "Assignment is already signed", "signature already recorded")
		return
	}

	assignment.Signature = req.Signature
	assignment.SignatureDate = time.Now()

	if err := mc.DB.Save(&assignment).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to save signature", err.Error())
		return
	}

	utilities.SuccessMessage(c, http.StatusOK, "Signature saved.")
}

// Delete godoc
// @Summary Delete an assignment by ID
// @Tags materialmanagement
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/materialmanagement/{id} [delete]
func (mc *MaterialController) Delete(c *gin.Context) {
	var assignment models.Assignment
	if err := mc.DB.First(&assignment, c.Param("id")).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Assignment not found", err.Error())
		return
	}

	if err := mc.removeAssignment(&assignment); err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete assignment", err.Error())
		return
	}

	utilities.SuccessMessage(c, http.StatusOK, "Assignment deleted.")
}

// UnassignProduct godoc
// @Summary Unassign a product
// @Description Remove the assignment for a product. A no-op when the product is unassigned.
// @Tags materialmanagement
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Success 200 {object} utilities.MessageResponse
// @Router /api/materialmanagement/product/{productId} [delete]
func (mc *MaterialController) UnassignProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err.Error())
		return
	}

	var assignment models.Assignment
	if err := mc.DB.Where("product_id = ?", productID).First(&assignment).Error; err != nil {
		// Idempotent: nothing assigned is a valid outcome
		utilities.SuccessMessage(c, http.StatusOK, "No assignment found for this product.")
		return
	}

	if err := mc.removeAssignment(&assignment); err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to unassign product", err.Error())
		return
	}

	utilities.SuccessMessage(c, http.StatusOK, "Product unassigned successfully.")
}

// removeAssignment deletes a ledger row and clears the product's denormalized
// assignee pointer in one transaction.
func (mc *MaterialController) removeAssignment(assignment *models.Assignment) error {
	return mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(assignment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Product{}).Where("id = ?", assignment.ProductID).
			Update("assigned_user_id", nil).Error
	})
}
