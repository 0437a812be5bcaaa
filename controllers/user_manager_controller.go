package controllers

import (
	"net/http"

	"techstock-backend/models"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserManagerController handles user and role administration (Admin only)
type UserManagerController struct {
	DB *gorm.DB
}

// NewUserManagerController creates a new user manager controller
func NewUserManagerController(db *gorm.DB) *UserManagerController {
	return &UserManagerController{DB: db}
}

// ManageRolesRequest replaces a user's role set
type ManageRolesRequest struct {
	UserName string   `json:"userName" binding:"required"`
	Roles    []string `json:"roles"`
}

// GetUsers godoc
// @Summary Get all users with their roles
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserResponse
// @Failure 403 {object} utilities.MessageResponse
// @Router /api/users [get]
func (uc *UserManagerController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Preload("UserRoles.Role").Order("id ASC").Find(&users).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve users", err.Error())
		return
	}

	responses := make([]models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToUserResponse()
	}

	c.JSON(http.StatusOK, responses)
}

// GetUser godoc
// @Summary Get a user by username
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userName path string true "Username"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/users/{userName} [get]
func (uc *UserManagerController) GetUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.Preload("UserRoles.Role").Where("user_name = ?", c.Param("userName")).First(&user).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "User not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, user.ToUserResponse())
}

// ManageRoles godoc
// @Summary Replace a user's role set
// @Description Remove all current roles and assign the given ones
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ManageRolesRequest true "Role management request"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/users/manageroles [post]
func (uc *UserManagerController) ManageRoles(c *gin.Context) {
	var req ManageRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("user_name = ?", req.UserName).First(&user).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "User not found", err.Error())
		return
	}

	// Resolve every requested role before touching anything
	roles := make([]models.Role, 0, len(req.Roles))
	for _, roleName := range req.Roles {
		var role models.Role
		if err := uc.DB.Where("name = ?", roleName).First(&role).Error; err != nil {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Role not found: "+roleName, err.Error())
			return
		}
		roles = append(roles, role)
	}

	err := uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		for _, role := range roles {
			if err := tx.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update roles", err.Error())
		return
	}

	uc.DB.Preload("UserRoles.Role").First(&user, user.ID)

	c.JSON(http.StatusOK, user.ToUserResponse())
}
