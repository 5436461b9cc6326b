package utils

import (
	"testing"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCommissionPercentage(t *testing.T) {
	product := &models.Product{
		CommissionType:  models.CommissionTypePercentage,
		CommissionValue: decimal.RequireFromString("15"),
	}

	tests := []struct {
		amount string
		want   string
	}{
		{"100.00", "15"},
		{"150.00", "22.5"},
		{"33.33", "5.00"},
		{"0.01", "0"},
	}

	for _, tc := range tests {
		got := CalculateCommission(product, decimal.RequireFromString(tc.amount))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"amount %s: got %s, want %s", tc.amount, got, tc.want)
	}
}

func TestCalculateCommissionFixedIgnoresAmount(t *testing.T) {
	product := &models.Product{
		CommissionType:  models.CommissionTypeFixed,
		CommissionValue: decimal.RequireFromString("15.00"),
	}

	for _, amount := range []string{"1.00", "500.00", "9999.99"} {
		got := CalculateCommission(product, decimal.RequireFromString(amount))
		assert.True(t, got.Equal(decimal.RequireFromString("15.00")),
			"amount %s: got %s", amount, got)
	}
}

func TestRecordClick(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, models.CommissionTypePercentage, "100.00", "10")
	link, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)

	click, err := RecordClick(db, link.LinkCode, "203.0.113.7", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, link.ID, click.LinkID)
	assert.Equal(t, "203.0.113.7", click.IPAddress)

	_, err = RecordClick(db, "missing00000", "203.0.113.7", "test-agent")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestRecordConversionFreezesCommission(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, models.CommissionTypePercentage, "100.00", "10")
	link, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)

	conv, err := RecordConversion(db, link.LinkCode, decimal.RequireFromString("200.00"))
	require.NoError(t, err)
	assert.True(t, conv.Commission.Equal(decimal.RequireFromString("20.00")))

	// Changing the product's rule must not touch commissions already recorded.
	require.NoError(t, db.Model(product).Update("commission_value", decimal.RequireFromString("50")).Error)

	var stored models.Conversion
	require.NoError(t, db.First(&stored, conv.ID).Error)
	assert.True(t, stored.Commission.Equal(decimal.RequireFromString("20.00")))

	later, err := RecordConversion(db, link.LinkCode, decimal.RequireFromString("200.00"))
	require.NoError(t, err)
	assert.True(t, later.Commission.Equal(decimal.RequireFromString("100.00")))
}

func TestRecordConversionRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, models.CommissionTypeFixed, "50.00", "5.00")
	link, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)

	_, err = RecordConversion(db, link.LinkCode, decimal.Zero)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidAmount))

	_, err = RecordConversion(db, link.LinkCode, decimal.RequireFromString("-5.00"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidAmount))

	_, err = RecordConversion(db, "missing00000", decimal.RequireFromString("10.00"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestRecordConversionDeletedProduct(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, models.CommissionTypePercentage, "100.00", "10")
	link, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)

	_, err = RecordConversion(db, link.LinkCode, decimal.RequireFromString("100.00"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))

	var count int64
	db.Model(&models.Conversion{}).Where("link_id = ?", link.ID).Count(&count)
	assert.Zero(t, count)
}
