package controllers

import (
	"strconv"
	"time"

	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns affiliates ranked by attributed revenue
func GetLeaderboard(c *gin.Context) {
	utils.LogInfo("GetLeaderboard called")

	pagination := utils.NewPagination(c)

	entries, err := utils.Leaderboard(config.DB, pagination.Limit, pagination.Offset)
	if err != nil {
		utils.LogError("Failed to build leaderboard: %v", err)
		utils.InternalServerError(c, "Failed to build leaderboard", err.Error())
		return
	}

	utils.Success(c, "Leaderboard retrieved successfully", gin.H{
		"leaderboard": entries,
		"page":        pagination.Page,
		"per_page":    pagination.Limit,
	})
}

// GetDailyStats returns the caller's per-day click and conversion counts
// over a date range (default: the last 30 days)
func GetDailyStats(c *gin.Context) {
	utils.LogInfo("GetDailyStats called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	from := c.DefaultQuery("from", now.AddDate(0, 0, -29).Format("2006-01-02"))
	to := c.DefaultQuery("to", now.Format("2006-01-02"))

	if _, err := time.Parse("2006-01-02", from); err != nil {
		utils.BadRequest(c, "Invalid from date", "Dates must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		utils.BadRequest(c, "Invalid to date", "Dates must be in YYYY-MM-DD format")
		return
	}
	if to < from {
		utils.BadRequest(c, "Invalid date range", "End date must not be before start date")
		return
	}

	stats, err := utils.UserDailyStats(config.DB, user.ID, from, to)
	if err != nil {
		utils.LogError("Failed to build daily stats for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to build daily stats", err.Error())
		return
	}

	utils.Success(c, "Daily stats retrieved successfully", gin.H{
		"from":  from,
		"to":    to,
		"stats": stats,
	})
}

// GetProductStats returns attribution totals for one product
func GetProductStats(c *gin.Context) {
	utils.LogInfo("GetProductStats called")

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product id", err.Error())
		return
	}

	stats, err := utils.GetProductStats(config.DB, uint(productID))
	if err != nil {
		utils.LogError("Failed to build product stats for %d: %v", productID, err)
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Product stats retrieved successfully", gin.H{"stats": stats})
}
