package utils

import (
	"regexp"
	"testing"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLinkCodeShape(t *testing.T) {
	codeRegex := regexp.MustCompile(`^[0-9a-f]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateLinkCode()
		assert.Regexp(t, codeRegex, code)
		assert.False(t, seen[code], "generated a duplicate code: %s", code)
		seen[code] = true
	}
}

func TestGetOrCreateAffiliateLinkIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, models.CommissionTypePercentage, "100.00", "10")

	first, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, first.LinkCode)

	second, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.LinkCode, second.LinkCode)

	var count int64
	db.Model(&models.AffiliateLink{}).Where("user_id = ? AND product_id = ?", user.ID, product.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetOrCreateAffiliateLinkDistinctPairs(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	product := createTestProduct(t, db, models.CommissionTypePercentage, "100.00", "10")

	aliceLink, err := GetOrCreateAffiliateLink(db, alice.ID, product.ID)
	require.NoError(t, err)
	bobLink, err := GetOrCreateAffiliateLink(db, bob.ID, product.ID)
	require.NoError(t, err)

	assert.NotEqual(t, aliceLink.LinkCode, bobLink.LinkCode)
}

func TestGetOrCreateAffiliateLinkUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")

	_, err := GetOrCreateAffiliateLink(db, user.ID, 9999)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestResolveLinkCode(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, models.CommissionTypeFixed, "50.00", "5.00")

	link, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)

	resolved, err := ResolveLinkCode(db, link.LinkCode)
	require.NoError(t, err)
	assert.Equal(t, link.ID, resolved.ID)
	assert.Equal(t, product.ID, resolved.Product.ID)

	_, err = ResolveLinkCode(db, "nope00000000")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestDeleteAffiliateLinkCascades(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, models.CommissionTypePercentage, "100.00", "10")

	link, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)

	_, err = RecordClick(db, link.LinkCode, "203.0.113.7", "test-agent")
	require.NoError(t, err)
	createTestConversion(t, db, link.ID, "100.00", "10.00")

	require.NoError(t, DeleteAffiliateLink(db, link.ID))

	var links, clicks, conversions int64
	db.Model(&models.AffiliateLink{}).Count(&links)
	db.Model(&models.Click{}).Count(&clicks)
	db.Model(&models.Conversion{}).Count(&conversions)
	assert.Zero(t, links)
	assert.Zero(t, clicks)
	assert.Zero(t, conversions)

	err = DeleteAffiliateLink(db, link.ID)
	assert.True(t, IsKind(err, KindNotFound))
}
