package controllers

import (
	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TrackClick records a visit through an affiliate link. Public endpoint;
// the code in the URL is the only credential.
func TrackClick(c *gin.Context) {
	code := c.Param("code")

	click, err := utils.RecordClick(config.DB, code, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		utils.LogError("Failed to record click for code %s: %v", code, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Click %d recorded for code %s", click.ID, code)
	utils.Success(c, "Click recorded", gin.H{"link_code": code})
}

// ConversionRequest represents the conversion postback body
type ConversionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// RecordConversion records a confirmed sale for an affiliate link. The
// commission is computed from the product's rule at this moment and
// frozen on the conversion row.
func RecordConversion(c *gin.Context) {
	code := c.Param("code")

	var req ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Conversion postback failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	conversion, err := utils.RecordConversion(config.DB, code, req.Amount)
	if err != nil {
		utils.LogError("Failed to record conversion for code %s: %v", code, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Conversion %d recorded for code %s - amount %s commission %s",
		conversion.ID, code, conversion.Amount.StringFixed(2), conversion.Commission.StringFixed(2))
	utils.Created(c, "Conversion recorded", gin.H{
		"conversion": gin.H{
			"id":         conversion.ID,
			"link_id":    conversion.LinkID,
			"amount":     conversion.Amount,
			"commission": conversion.Commission,
		},
	})
}
