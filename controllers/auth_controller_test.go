package controllers_test

import (
	"net/http"
	"testing"

	"techstock-backend/controllers"
	"techstock-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsToken(t *testing.T) {
	env := setupTest(t)

	rec := env.request(t, http.MethodPost, "/api/auth/login", controllers.LoginRequest{
		Email:    adminEmail,
		Password: "Admin@123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp controllers.LoginResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, adminEmail, resp.Email)
	assert.Equal(t, adminEmail, resp.UserName)
	assert.NotZero(t, resp.UserID)

	// The issued token passes validation
	rec = env.request(t, http.MethodGet, "/api/auth/validatetoken", nil, resp.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var validation controllers.TokenValidationResponse
	decode(t, rec, &validation)
	assert.True(t, validation.IsValid)
	assert.Equal(t, resp.UserID, validation.UserID)
	assert.Equal(t, adminEmail, validation.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := setupTest(t)

	rec := env.request(t, http.MethodPost, "/api/auth/login", controllers.LoginRequest{
		Email:    adminEmail,
		Password: "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/auth/login", controllers.LoginRequest{
		Email:    "nobody@verwee.be",
		Password: "whatever",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterCreatesUserWithDefaultRole(t *testing.T) {
	env := setupTest(t)

	rec := env.request(t, http.MethodPost, "/api/auth/register", controllers.RegisterRequest{
		Email:    "newcomer@verwee.be",
		Password: "Newcomer@123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Duplicate registration is rejected
	rec = env.request(t, http.MethodPost, "/api/auth/register", controllers.RegisterRequest{
		Email:    "newcomer@verwee.be",
		Password: "Newcomer@123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The new account can log in and carries the User role
	rec = env.request(t, http.MethodPost, "/api/auth/login", controllers.LoginRequest{
		Email:    "newcomer@verwee.be",
		Password: "Newcomer@123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var login controllers.LoginResponse
	decode(t, rec, &login)

	rec = env.request(t, http.MethodGet, "/api/auth/profile", nil, login.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.UserResponse
	decode(t, rec, &profile)
	assert.Equal(t, []string{models.RoleUser}, profile.Roles)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupTest(t)

	rec := env.request(t, http.MethodGet, "/api/products", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := env.request(t, http.MethodGet, "/api/auth/profile", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, req.Code)
}
