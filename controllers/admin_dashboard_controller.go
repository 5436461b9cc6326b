package controllers

import (
	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetDashboard returns platform-wide totals for the admin overview
func GetDashboard(c *gin.Context) {
	utils.LogInfo("GetDashboard called")

	var userCount, productCount, linkCount, clickCount int64
	config.DB.Model(&models.User{}).Count(&userCount)
	config.DB.Model(&models.Product{}).Count(&productCount)
	config.DB.Model(&models.AffiliateLink{}).Count(&linkCount)
	config.DB.Model(&models.Click{}).Count(&clickCount)

	var conversions []models.Conversion
	if err := config.DB.Find(&conversions).Error; err != nil {
		utils.LogError("Failed to fetch conversions: %v", err)
		utils.InternalServerError(c, "Failed to build dashboard", err.Error())
		return
	}

	revenue := decimal.Zero
	commission := decimal.Zero
	for _, conversion := range conversions {
		revenue = revenue.Add(conversion.Amount)
		commission = commission.Add(conversion.Commission)
	}

	var pendingPayouts []models.Payout
	if err := config.DB.Where("status = ?", models.PayoutStatusPending).Find(&pendingPayouts).Error; err != nil {
		utils.LogError("Failed to fetch pending payouts: %v", err)
		utils.InternalServerError(c, "Failed to build dashboard", err.Error())
		return
	}
	pendingAmount := decimal.Zero
	for _, payout := range pendingPayouts {
		pendingAmount = pendingAmount.Add(payout.Amount)
	}

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"users":                 userCount,
		"products":              productCount,
		"links":                 linkCount,
		"clicks":                clickCount,
		"conversions":           len(conversions),
		"total_revenue":         revenue,
		"total_commission":      commission,
		"pending_payouts":       len(pendingPayouts),
		"pending_payout_amount": pendingAmount,
	})
}
