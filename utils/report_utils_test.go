package utils

import (
	"testing"
	"time"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedLink(t *testing.T, db *gorm.DB, username string) *models.AffiliateLink {
	t.Helper()
	user := createTestUser(t, db, username)
	product := createTestProduct(t, db, models.CommissionTypePercentage, "100.00", "10")
	link, err := GetOrCreateAffiliateLink(db, user.ID, product.ID)
	require.NoError(t, err)
	return link
}

func TestLeaderboardOrdering(t *testing.T) {
	db := setupTestDB(t)

	alice := seedLink(t, db, "alice")
	bob := seedLink(t, db, "bob")
	carol := seedLink(t, db, "carol")

	createTestConversion(t, db, alice.ID, "100.00", "10.00")
	createTestConversion(t, db, bob.ID, "300.00", "30.00")
	// carol ties with alice on revenue; the lower user id wins the slot
	createTestConversion(t, db, carol.ID, "100.00", "10.00")

	entries, err := Leaderboard(db, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "bob", entries[0].Username)
	assert.True(t, entries[0].Revenue.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, "alice", entries[1].Username)
	assert.Equal(t, "carol", entries[2].Username)
	assert.Less(t, entries[1].UserID, entries[2].UserID)
}

func TestLeaderboardPagination(t *testing.T) {
	db := setupTestDB(t)

	alice := seedLink(t, db, "alice")
	bob := seedLink(t, db, "bob")
	createTestConversion(t, db, alice.ID, "200.00", "20.00")
	createTestConversion(t, db, bob.ID, "100.00", "10.00")

	page, err := Leaderboard(db, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "bob", page[0].Username)
}

func TestUserDailyStats(t *testing.T) {
	db := setupTestDB(t)
	link := seedLink(t, db, "alice")

	for i := 0; i < 3; i++ {
		_, err := RecordClick(db, link.LinkCode, "203.0.113.7", "test-agent")
		require.NoError(t, err)
	}
	_, err := RecordConversion(db, link.LinkCode, decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	stats, err := UserDailyStats(db, link.UserID, today, today)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, today, stats[0].Day)
	assert.EqualValues(t, 3, stats[0].Clicks)
	assert.EqualValues(t, 1, stats[0].Conversions)

	// Out-of-range window returns nothing.
	stats, err = UserDailyStats(db, link.UserID, "2000-01-01", "2000-01-31")
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestGetProductStats(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	product := createTestProduct(t, db, models.CommissionTypePercentage, "100.00", "10")

	aliceLink, err := GetOrCreateAffiliateLink(db, alice.ID, product.ID)
	require.NoError(t, err)
	bobLink, err := GetOrCreateAffiliateLink(db, bob.ID, product.ID)
	require.NoError(t, err)

	_, err = RecordClick(db, aliceLink.LinkCode, "203.0.113.7", "test-agent")
	require.NoError(t, err)
	_, err = RecordClick(db, bobLink.LinkCode, "203.0.113.8", "test-agent")
	require.NoError(t, err)

	createTestConversion(t, db, aliceLink.ID, "100.00", "10.00")
	createTestConversion(t, db, bobLink.ID, "50.00", "5.00")

	stats, err := GetProductStats(db, product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Links)
	assert.EqualValues(t, 2, stats.Clicks)
	assert.EqualValues(t, 2, stats.Conversions)
	assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, stats.Commission.Equal(decimal.RequireFromString("15.00")))

	_, err = GetProductStats(db, 9999)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}
