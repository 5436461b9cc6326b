package controllers

import (
	"strconv"

	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
)

// GetAllPayouts returns every payout, optionally filtered by status
func GetAllPayouts(c *gin.Context) {
	utils.LogInfo("GetAllPayouts called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Payout{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count payouts: %v", err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}

	var payouts []models.Payout
	if err := query.Preload("User").Order("requested_at DESC, id DESC").Limit(pagination.Limit).Offset(pagination.Offset).Find(&payouts).Error; err != nil {
		utils.LogError("Failed to fetch payouts: %v", err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}

	list := make([]gin.H, len(payouts))
	for i, payout := range payouts {
		entry := payoutResponse(&payouts[i])
		entry["username"] = payout.User.Username
		entry["email"] = payout.User.Email
		list[i] = entry
	}

	utils.SuccessWithPagination(c, "Payouts retrieved successfully", list, total, pagination.Page, pagination.Limit)
}

// UpdatePayoutStatusRequest represents the status update request body
type UpdatePayoutStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePayoutStatus moves a payout through its lifecycle. Only forward
// transitions are accepted; invalid moves return a conflict.
func UpdatePayoutStatus(c *gin.Context) {
	utils.LogInfo("UpdatePayoutStatus called")

	payoutID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid payout id", err.Error())
		return
	}

	var req UpdatePayoutStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("UpdatePayoutStatus failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	payout, err := utils.UpdatePayoutStatus(config.DB, uint(payoutID), req.Status)
	if err != nil {
		utils.LogError("Failed to update payout %d: %v", payoutID, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Payout %d moved to %s", payout.ID, payout.Status)
	utils.Success(c, "Payout status updated successfully", gin.H{"payout": payoutResponse(payout)})
}
