package controllers

import (
	"net/http"

	"techstock-backend/config"
	"techstock-backend/models"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB     *gorm.DB
	Config *config.Config
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"Password@123"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@verwee.be"`
	Password string `json:"password" binding:"required" example:"Admin@123"`
}

// LoginResponse represents the login response consumed by the mobile client
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

// TokenValidationResponse represents the token validation result
type TokenValidationResponse struct {
	IsValid bool   `json:"isValid"`
	UserID  uint   `json:"userId"`
	Email   string `json:"email"`
}

// NewAuthController creates a new auth controller
func NewAuthController(db *gorm.DB, config *config.Config) *AuthController {
	return &AuthController{
		DB:     db,
		Config: config,
	}
}

// Login godoc
// @Summary Login user
// @Description Authenticate user by email and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} utilities.MessageResponse
// @Failure 401 {object} utilities.MessageResponse
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	// Find user by email
	var user models.User
	if err := ac.DB.Preload("UserRoles.Role").Where("email = ?", req.Email).First(&user).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", "user not found")
		return
	}

	// Check password
	if !utilities.CheckPasswordHash(req.Password, user.PasswordHash) {
		utilities.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", "incorrect password")
		return
	}

	// Generate token
	token, err := utilities.GenerateToken(
		user.ID,
		user.UserName,
		user.Email,
		user.RoleNames(),
		ac.Config.JWTSecret,
		ac.Config.JWTExpireHours,
	)
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Email:    user.Email,
		UserName: user.UserName,
	})
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user account with the default User role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.MessageResponse
// @Router /api/auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	// Check if user already exists
	var existingUser models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "A user with this email already exists", "email already taken")
		return
	}

	// Hash password
	hashedPassword, err := utilities.HashPassword(req.Password)
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	user := models.User{
		UserName:     req.Email,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	// Assign the default User role
	var userRole models.Role
	if err := ac.DB.Where("name = ?", models.RoleUser).First(&userRole).Error; err == nil {
		ac.DB.Create(&models.UserRole{UserID: user.ID, RoleID: userRole.ID})
	}

	utilities.SuccessMessage(c, http.StatusCreated, "User created successfully")
}

// ValidateToken godoc
// @Summary Validate the caller's token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TokenValidationResponse
// @Failure 401 {object} utilities.MessageResponse
// @Router /api/auth/validatetoken [get]
func (ac *AuthController) ValidateToken(c *gin.Context) {
	c.JSON(http.StatusOK, TokenValidationResponse{
		IsValid: true,
		UserID:  c.GetUint("user_id"),
		Email:   c.GetString("email"),
	})
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} utilities.MessageResponse
// @Router /api/auth/profile [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := ac.DB.Preload("UserRoles.Role").First(&user, userID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "User not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, user.ToUserResponse())
}

// Logout godoc
// @Summary Logout user
// @Description Tokens are discarded client-side; the endpoint exists for the mobile client flow
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.MessageResponse
// @Router /api/auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	utilities.SuccessMessage(c, http.StatusOK, "Logout successful")
}
