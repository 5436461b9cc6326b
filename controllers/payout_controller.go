package controllers

import (
	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetBalance returns the caller's available balance
func GetBalance(c *gin.Context) {
	utils.LogInfo("GetBalance called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	balance, err := utils.AvailableBalance(config.DB, user.ID)
	if err != nil {
		utils.LogError("Failed to compute balance for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to compute balance", err.Error())
		return
	}

	utils.Success(c, "Balance retrieved successfully", gin.H{
		"balance":        balance,
		"minimum_payout": utils.MinimumPayout,
	})
}

// PayoutRequestBody represents the payout request body
type PayoutRequestBody struct {
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Method  string          `json:"method" binding:"required"`
	Details string          `json:"details"`
}

// RequestPayout creates a pending payout against the caller's balance
func RequestPayout(c *gin.Context) {
	utils.LogInfo("RequestPayout called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req PayoutRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("RequestPayout failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	payout, err := utils.RequestPayout(config.DB, user.ID, req.Amount, utils.SanitizeString(req.Method), utils.SanitizeString(req.Details))
	if err != nil {
		utils.LogError("Payout request rejected for user %d: %v", user.ID, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Payout %d requested by user %d for %s", payout.ID, user.ID, payout.Amount.StringFixed(2))
	utils.Created(c, "Payout requested successfully", gin.H{"payout": payoutResponse(payout)})
}

// GetPayouts returns the caller's payout history
func GetPayouts(c *gin.Context) {
	utils.LogInfo("GetPayouts called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Payout{}).Where("user_id = ?", user.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count payouts for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}

	var payouts []models.Payout
	if err := query.Order("requested_at DESC, id DESC").Limit(pagination.Limit).Offset(pagination.Offset).Find(&payouts).Error; err != nil {
		utils.LogError("Failed to fetch payouts for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}

	list := make([]gin.H, len(payouts))
	for i := range payouts {
		list[i] = payoutResponse(&payouts[i])
	}

	utils.SuccessWithPagination(c, "Payouts retrieved successfully", list, total, pagination.Page, pagination.Limit)
}

func payoutResponse(payout *models.Payout) gin.H {
	return gin.H{
		"id":           payout.ID,
		"user_id":      payout.UserID,
		"amount":       payout.Amount,
		"status":       payout.Status,
		"method":       payout.Method,
		"details":      payout.Details,
		"requested_at": payout.RequestedAt,
		"processed_at": payout.ProcessedAt,
	}
}
