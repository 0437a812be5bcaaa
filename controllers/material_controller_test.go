package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"techstock-backend/controllers"
	"techstock-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCreatesUnsignedAssignment(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)

	assignmentID := env.assign(t, product.ID, userEmail, 1)

	// The owner sees the new assignment with an empty signature
	rec := env.request(t, http.MethodGet, "/api/materialmanagement/user", nil, env.tokenFor(t, userEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	var assignments []models.AssignmentResponse
	decode(t, rec, &assignments)
	require.Len(t, assignments, 1)
	assert.Equal(t, assignmentID, assignments[0].ID)
	assert.Equal(t, product.ID, assignments[0].ProductID)
	assert.Empty(t, assignments[0].Signature)
	assert.False(t, assignments[0].AssignmentDate.IsZero())
	assert.True(t, assignments[0].SignatureDate.IsZero())

	// The denormalized pointer on the product follows the ledger
	var updated models.Product
	require.NoError(t, env.DB.First(&updated, product.ID).Error)
	require.NotNil(t, updated.AssignedUserID)
	assert.Equal(t, env.userID(t, userEmail), *updated.AssignedUserID)
}

func TestAssignReplacesExistingAssignment(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)

	first := env.assign(t, product.ID, userEmail, 1)
	second := env.assign(t, product.ID, supportEmail, 2)
	assert.NotEqual(t, first, second)

	// Replace semantics: exactly one ledger row per product
	var count int64
	require.NoError(t, env.DB.Model(&models.Assignment{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var assignment models.Assignment
	require.NoError(t, env.DB.Where("product_id = ?", product.ID).First(&assignment).Error)
	assert.Equal(t, env.userID(t, supportEmail), assignment.UserID)
	assert.EqualValues(t, 2, assignment.StateID)

	var updated models.Product
	require.NoError(t, env.DB.First(&updated, product.ID).Error)
	require.NotNil(t, updated.AssignedUserID)
	assert.Equal(t, env.userID(t, supportEmail), *updated.AssignedUserID)
}

func TestAssignResolvesUserByUsername(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)

	// Give the account a username distinct from its email
	require.NoError(t, env.DB.Model(&models.User{}).
		Where("email = ?", userEmail).Update("user_name", "johndoe").Error)

	env.assign(t, product.ID, "johndoe", 1)

	var assignment models.Assignment
	require.NoError(t, env.DB.Where("product_id = ?", product.ID).First(&assignment).Error)
	assert.Equal(t, env.userID(t, userEmail), assignment.UserID)
}

func TestAssignValidatesReferences(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)
	token := env.tokenFor(t, supportEmail)

	cases := []struct {
		name    string
		req     controllers.AssignRequest
		message string
	}{
		{"unknown product", controllers.AssignRequest{ProductID: 9999, UserID: userEmail, StateID: 1}, "Product not found."},
		{"unknown user", controllers.AssignRequest{ProductID: product.ID, UserID: "ghost@verwee.be", StateID: 1}, "User not found."},
		{"unknown state", controllers.AssignRequest{ProductID: product.ID, UserID: userEmail, StateID: 9999}, "State not found."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.request(t, http.MethodPost, "/api/materialmanagement/assign", tc.req, token)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.message)
		})
	}

	// Nothing was written
	var count int64
	require.NoError(t, env.DB.Model(&models.Assignment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSignLifecycle(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)
	assignmentID := env.assign(t, product.ID, userEmail, 1)

	signReq := controllers.SignRequest{ID: assignmentID, Signature: "base64sig"}

	// Someone else cannot sign
	rec := env.request(t, http.MethodPost, "/api/materialmanagement/sign", signReq, env.tokenFor(t, supportEmail))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var unchanged models.Assignment
	require.NoError(t, env.DB.First(&unchanged, assignmentID).Error)
	assert.Empty(t, unchanged.Signature)

	// The owner signs
	rec = env.request(t, http.MethodPost, "/api/materialmanagement/sign", signReq, env.tokenFor(t, userEmail))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var signed models.Assignment
	require.NoError(t, env.DB.First(&signed, assignmentID).Error)
	assert.Equal(t, "base64sig", signed.Signature)
	assert.False(t, signed.SignatureDate.IsZero())

	// A second signature is rejected and the first one stays
	rec = env.request(t, http.MethodPost, "/api/materialmanagement/sign",
		controllers.SignRequest{ID: assignmentID, Signature: "other"}, env.tokenFor(t, userEmail))
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.NoError(t, env.DB.First(&signed, assignmentID).Error)
	assert.Equal(t, "base64sig", signed.Signature)
}

func TestSignUnknownAssignment(t *testing.T) {
	env := setupTest(t)

	rec := env.request(t, http.MethodPost, "/api/materialmanagement/sign",
		controllers.SignRequest{ID: 424242, Signature: "sig"}, env.tokenFor(t, userEmail))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnassignIsIdempotent(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)
	token := env.tokenFor(t, supportEmail)
	path := fmt.Sprintf("/api/materialmanagement/product/%d", product.ID)

	// No assignment yet: still a success
	rec := env.request(t, http.MethodDelete, path, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No assignment found")

	env.assign(t, product.ID, userEmail, 1)

	rec = env.request(t, http.MethodDelete, path, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "unassigned")

	var count int64
	require.NoError(t, env.DB.Model(&models.Assignment{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.Zero(t, count)

	var updated models.Product
	require.NoError(t, env.DB.First(&updated, product.ID).Error)
	assert.Nil(t, updated.AssignedUserID)
}

func TestDeleteAssignmentByID(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)
	assignmentID := env.assign(t, product.ID, userEmail, 1)
	token := env.tokenFor(t, supportEmail)

	rec := env.request(t, http.MethodDelete, fmt.Sprintf("/api/materialmanagement/%d", assignmentID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/api/materialmanagement/%d", assignmentID), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var updated models.Product
	require.NoError(t, env.DB.First(&updated, product.ID).Error)
	assert.Nil(t, updated.AssignedUserID)
}

func TestLedgerAdministrationRequiresSupportRole(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)
	userToken := env.tokenFor(t, userEmail)

	rec := env.request(t, http.MethodGet, "/api/materialmanagement", nil, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/materialmanagement/assign", controllers.AssignRequest{
		ProductID: product.ID,
		UserID:    userEmail,
		StateID:   1,
	}, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetAllJoinsDetails(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)
	env.assign(t, product.ID, userEmail, 1)

	rec := env.request(t, http.MethodGet, "/api/materialmanagement", nil, env.tokenFor(t, adminEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	var assignments []models.AssignmentResponse
	decode(t, rec, &assignments)
	require.Len(t, assignments, 1)
	assert.Equal(t, "Latitude 5520", assignments[0].Product.Name)
	assert.Equal(t, "Laptop", assignments[0].Product.TypeArticle.Name)
	assert.Equal(t, "New Product", assignments[0].State.Status)
	assert.Equal(t, userEmail, assignments[0].User.Email)
}
