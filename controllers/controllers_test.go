package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"techstock-backend/config"
	"techstock-backend/controllers"
	"techstock-backend/migrations"
	"techstock-backend/models"
	"techstock-backend/routes"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	adminEmail   = "admin@verwee.be"
	supportEmail = "support@verwee.be"
	userEmail    = "user@verwee.be"
)

// testEnv holds everything a handler test needs
type testEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	Config *config.Config
}

// setupTest builds a router backed by an in-memory database with the
// default roles, states and accounts seeded.
func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	migrations.AutoMigrate(db)

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpireHours: 1,
		DefaultCulture: "fr",
		Languages:      config.SupportedLanguages(),
	}

	router := routes.SetupRoutes(
		cfg,
		controllers.NewAuthController(db, cfg),
		controllers.NewUserManagerController(db),
		controllers.NewProductController(db),
		controllers.NewTypeArticleController(db),
		controllers.NewSupplierController(db),
		controllers.NewStateController(db),
		controllers.NewMaterialController(db),
		controllers.NewStatisticsController(db),
		controllers.NewTranslationController(cfg),
	)

	return &testEnv{DB: db, Router: router, Config: cfg}
}

// tokenFor issues a token for a seeded account
func (env *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()

	var user models.User
	require.NoError(t, env.DB.Preload("UserRoles.Role").Where("email = ?", email).First(&user).Error)

	token, err := utilities.GenerateToken(user.ID, user.UserName, user.Email, user.RoleNames(), env.Config.JWTSecret, env.Config.JWTExpireHours)
	require.NoError(t, err)
	return token
}

// userID looks up a seeded account's ID
func (env *testEnv) userID(t *testing.T, email string) uint {
	t.Helper()

	var user models.User
	require.NoError(t, env.DB.Where("email = ?", email).First(&user).Error)
	return user.ID
}

// request performs an HTTP request against the test router
func (env *testEnv) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response body
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// createCatalog seeds one type, one supplier and one product, returning the product
func (env *testEnv) createCatalog(t *testing.T) models.Product {
	t.Helper()

	typeArticle := models.TypeArticle{Name: "Laptop"}
	require.NoError(t, env.DB.Create(&typeArticle).Error)

	supplier := models.Supplier{Name: "Dell"}
	require.NoError(t, env.DB.Create(&supplier).Error)

	product := models.Product{
		Name:         "Latitude 5520",
		SerialNumber: "SN-0001",
		TypeID:       typeArticle.ID,
		SupplierID:   supplier.ID,
	}
	require.NoError(t, env.DB.Create(&product).Error)
	return product
}

// assign performs an assign call as the support account and returns the new assignment ID
func (env *testEnv) assign(t *testing.T, productID uint, userIdentifier string, stateID uint) uint {
	t.Helper()

	rec := env.request(t, http.MethodPost, "/api/materialmanagement/assign", controllers.AssignRequest{
		ProductID: productID,
		UserID:    userIdentifier,
		StateID:   stateID,
	}, env.tokenFor(t, supportEmail))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp controllers.AssignResponse
	decode(t, rec, &resp)
	require.NotZero(t, resp.AssignmentID)
	return resp.AssignmentID
}
