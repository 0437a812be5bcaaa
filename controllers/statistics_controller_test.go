package controllers_test

import (
	"net/http"
	"testing"

	"techstock-backend/controllers"
	"techstock-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsCounts(t *testing.T) {
	env := setupTest(t)
	first := env.createCatalog(t)

	for _, serial := range []string{"SN-0002", "SN-0003"} {
		product := models.Product{
			Name:         "Extra device",
			SerialNumber: serial,
			TypeID:       first.TypeID,
			SupplierID:   first.SupplierID,
		}
		require.NoError(t, env.DB.Create(&product).Error)
	}

	env.assign(t, first.ID, userEmail, 1)

	rec := env.request(t, http.MethodGet, "/api/statistics", nil, env.tokenFor(t, userEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats controllers.StatisticsResponse
	decode(t, rec, &stats)
	assert.EqualValues(t, 3, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.AssignedProducts)
	assert.EqualValues(t, 2, stats.UnassignedProducts)
	assert.Equal(t, stats.TotalProducts, stats.AssignedProducts+stats.UnassignedProducts)
}

func TestStatisticsInvariantAcrossLifecycle(t *testing.T) {
	env := setupTest(t)
	product := env.createCatalog(t)

	check := func() controllers.StatisticsResponse {
		rec := env.request(t, http.MethodGet, "/api/statistics", nil, env.tokenFor(t, userEmail))
		require.Equal(t, http.StatusOK, rec.Code)
		var stats controllers.StatisticsResponse
		decode(t, rec, &stats)
		assert.Equal(t, stats.TotalProducts, stats.AssignedProducts+stats.UnassignedProducts)
		return stats
	}

	stats := check()
	assert.EqualValues(t, 0, stats.AssignedProducts)

	env.assign(t, product.ID, userEmail, 1)
	stats = check()
	assert.EqualValues(t, 1, stats.AssignedProducts)

	// Reassignment keeps the count at one
	env.assign(t, product.ID, supportEmail, 2)
	stats = check()
	assert.EqualValues(t, 1, stats.AssignedProducts)
}

func TestUserStatisticsOrderedDescending(t *testing.T) {
	env := setupTest(t)
	first := env.createCatalog(t)

	second := models.Product{Name: "Dock WD19", SerialNumber: "SN-0002", TypeID: first.TypeID, SupplierID: first.SupplierID}
	require.NoError(t, env.DB.Create(&second).Error)
	third := models.Product{Name: "Keyboard KB216", SerialNumber: "SN-0003", TypeID: first.TypeID, SupplierID: first.SupplierID}
	require.NoError(t, env.DB.Create(&third).Error)

	env.assign(t, first.ID, userEmail, 1)
	env.assign(t, second.ID, userEmail, 1)
	env.assign(t, third.ID, supportEmail, 1)

	rec := env.request(t, http.MethodGet, "/api/statistics/users", nil, env.tokenFor(t, adminEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	var counts []controllers.UserAssignmentCount
	decode(t, rec, &counts)
	require.Len(t, counts, 2)
	assert.Equal(t, env.userID(t, userEmail), counts[0].UserID)
	assert.EqualValues(t, 2, counts[0].Count)
	assert.Equal(t, env.userID(t, supportEmail), counts[1].UserID)
	assert.EqualValues(t, 1, counts[1].Count)
}
