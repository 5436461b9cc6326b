package utils

import (
	"sort"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LeaderboardEntry is one row of the affiliate leaderboard
type LeaderboardEntry struct {
	UserID      uint            `json:"user_id"`
	Username    string          `json:"username"`
	Conversions int64           `json:"conversions"`
	Revenue     decimal.Decimal `json:"revenue"`
	Commission  decimal.Decimal `json:"commission"`
}

// Leaderboard ranks users by attributed revenue. Ties break on user id
// ascending so pagination stays reproducible.
func Leaderboard(db *gorm.DB, limit, offset int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := db.Table("conversions").
		Select("affiliate_links.user_id AS user_id, users.username AS username, COUNT(conversions.id) AS conversions, SUM(conversions.amount) AS revenue, SUM(conversions.commission) AS commission").
		Joins("JOIN affiliate_links ON affiliate_links.id = conversions.link_id").
		Joins("JOIN users ON users.id = affiliate_links.user_id").
		Group("affiliate_links.user_id, users.username").
		Order("revenue DESC, user_id ASC").
		Limit(limit).Offset(offset).
		Scan(&entries).Error
	return entries, err
}

// DailyStat aggregates a user's traffic for one calendar day
type DailyStat struct {
	Day         string `json:"day"`
	Clicks      int64  `json:"clicks"`
	Conversions int64  `json:"conversions"`
}

type dayCount struct {
	Day   string
	Count int64
}

// UserDailyStats returns per-day click and conversion counts for a
// user's links between two dates, ordered by day ascending.
func UserDailyStats(db *gorm.DB, userID uint, from, to string) ([]DailyStat, error) {
	var clicks []dayCount
	err := db.Table("clicks").
		Select("DATE(clicks.created_at) AS day, COUNT(clicks.id) AS count").
		Joins("JOIN affiliate_links ON affiliate_links.id = clicks.link_id").
		Where("affiliate_links.user_id = ? AND DATE(clicks.created_at) BETWEEN ? AND ?", userID, from, to).
		Group("DATE(clicks.created_at)").
		Order("day ASC").
		Scan(&clicks).Error
	if err != nil {
		return nil, err
	}

	var conversions []dayCount
	err = db.Table("conversions").
		Select("DATE(conversions.created_at) AS day, COUNT(conversions.id) AS count").
		Joins("JOIN affiliate_links ON affiliate_links.id = conversions.link_id").
		Where("affiliate_links.user_id = ? AND DATE(conversions.created_at) BETWEEN ? AND ?", userID, from, to).
		Group("DATE(conversions.created_at)").
		Order("day ASC").
		Scan(&conversions).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailyStat)
	var days []string
	for _, row := range clicks {
		byDay[row.Day] = &DailyStat{Day: row.Day, Clicks: row.Count}
		days = append(days, row.Day)
	}
	for _, row := range conversions {
		if stat, ok := byDay[row.Day]; ok {
			stat.Conversions = row.Count
			continue
		}
		byDay[row.Day] = &DailyStat{Day: row.Day, Conversions: row.Count}
		days = append(days, row.Day)
	}

	sort.Strings(days)
	stats := make([]DailyStat, 0, len(days))
	for _, day := range days {
		stats = append(stats, *byDay[day])
	}
	return stats, nil
}

// ProductStats aggregates attribution activity for one product
type ProductStats struct {
	ProductID   uint            `json:"product_id"`
	Links       int64           `json:"links"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Revenue     decimal.Decimal `json:"revenue"`
	Commission  decimal.Decimal `json:"commission"`
}

// GetProductStats returns link, click and conversion totals for a product
func GetProductStats(db *gorm.DB, productID uint) (*ProductStats, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFoundError(ErrProductNotFound)
		}
		return nil, err
	}

	stats := ProductStats{ProductID: productID, Revenue: decimal.Zero, Commission: decimal.Zero}

	if err := db.Model(&models.AffiliateLink{}).Where("product_id = ?", productID).Count(&stats.Links).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Click{}).
		Joins("JOIN affiliate_links ON affiliate_links.id = clicks.link_id").
		Where("affiliate_links.product_id = ?", productID).
		Count(&stats.Clicks).Error; err != nil {
		return nil, err
	}

	var amounts []models.Conversion
	err := db.Model(&models.Conversion{}).
		Joins("JOIN affiliate_links ON affiliate_links.id = conversions.link_id").
		Where("affiliate_links.product_id = ?", productID).
		Find(&amounts).Error
	if err != nil {
		return nil, err
	}
	stats.Conversions = int64(len(amounts))
	for _, conversion := range amounts {
		stats.Revenue = stats.Revenue.Add(conversion.Amount)
		stats.Commission = stats.Commission.Add(conversion.Commission)
	}

	return &stats, nil
}
