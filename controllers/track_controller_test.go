package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestEnv(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateModels(db))

	previous := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = previous
		sqlDB.Close()
	})
	return db
}

// testRouter mounts the public tracking routes plus the payout routes
// behind a stub auth middleware that injects the given user.
func testRouter(user *models.User) *gin.Engine {
	router := gin.New()
	router.GET("/v1/t/:code", TrackClick)
	router.POST("/v1/t/:code/convert", RecordConversion)

	authed := router.Group("/v1/user")
	authed.Use(func(c *gin.Context) {
		if user == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("user", *user)
		c.Next()
	})
	authed.GET("/balance", GetBalance)
	authed.POST("/payouts", RequestPayout)
	return router
}

func seedLinkedUser(t *testing.T, db *gorm.DB) (*models.User, *models.AffiliateLink) {
	t.Helper()
	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	product := &models.Product{
		Name:            "Wireless Keyboard",
		Price:           decimal.RequireFromString("100.00"),
		CommissionType:  models.CommissionTypePercentage,
		CommissionValue: decimal.RequireFromString("10"),
		IsActive:        true,
	}
	require.NoError(t, db.Create(product).Error)

	link, err := utils.GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)
	return user, link
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestTrackClickEndpoint(t *testing.T) {
	db := setupTestEnv(t)
	_, link := seedLinkedUser(t, db)
	router := testRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/t/"+link.LinkCode, nil)
	req.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])

	var count int64
	db.Model(&models.Click{}).Where("link_id = ?", link.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/t/unknown00000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, utils.KindNotFound, body["kind"])
}

func TestRecordConversionEndpoint(t *testing.T) {
	db := setupTestEnv(t)
	_, link := seedLinkedUser(t, db)
	router := testRouter(nil)

	payload := bytes.NewBufferString(`{"amount": "250.00"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/t/"+link.LinkCode+"/convert", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var conversion models.Conversion
	require.NoError(t, db.Where("link_id = ?", link.ID).First(&conversion).Error)
	assert.True(t, conversion.Commission.Equal(decimal.RequireFromString("25.00")))

	// Negative amounts are rejected with the invalid_amount kind.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/t/"+link.LinkCode+"/convert",
		bytes.NewBufferString(`{"amount": "-5.00"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, utils.KindInvalidAmount, body["kind"])

	// An omitted amount binds to zero and is refused like any other
	// non-positive amount.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/t/"+link.LinkCode+"/convert",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, utils.KindInvalidAmount, body["kind"])
}

func TestPayoutEndpoints(t *testing.T) {
	db := setupTestEnv(t)
	user, link := seedLinkedUser(t, db)
	router := testRouter(user)

	require.NoError(t, db.Create(&models.Conversion{
		LinkID:     link.ID,
		Amount:     decimal.RequireFromString("500.00"),
		Commission: decimal.RequireFromString("50.00"),
	}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/user/balance", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	balance, err := decimal.NewFromString(data["balance"].(string))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("50.00")))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/user/payouts",
		bytes.NewBufferString(`{"amount": "30.00", "method": "bank", "details": "acct-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/user/payouts",
		bytes.NewBufferString(`{"amount": "30.00", "method": "bank"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, utils.KindInsufficientBalance, body["kind"])
}
