package utils

import (
	"fmt"
	"testing"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database migrated with the
// production schema. A single connection keeps sqlite's writers
// serialized under the concurrency tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.AffiliateLink{},
		&models.Click{},
		&models.Conversion{},
		&models.Payout{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, commissionType, price, value string) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:            "Test Product",
		Price:           decimal.RequireFromString(price),
		CommissionType:  commissionType,
		CommissionValue: decimal.RequireFromString(value),
		IsActive:        true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

func createTestConversion(t *testing.T, db *gorm.DB, linkID uint, amount, commission string) *models.Conversion {
	t.Helper()

	conversion := &models.Conversion{
		LinkID:     linkID,
		Amount:     decimal.RequireFromString(amount),
		Commission: decimal.RequireFromString(commission),
	}
	if err := db.Create(conversion).Error; err != nil {
		t.Fatalf("Failed to create test conversion: %v", err)
	}
	return conversion
}
