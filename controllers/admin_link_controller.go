package controllers

import (
	"strconv"

	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
)

// DeleteLink removes an affiliate link together with its tracked clicks
// and conversions. Admin cleanup path for abusive or stale links.
func DeleteLink(c *gin.Context) {
	utils.LogInfo("DeleteLink called")

	linkID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid link id", err.Error())
		return
	}

	if err := utils.DeleteAffiliateLink(config.DB, uint(linkID)); err != nil {
		utils.LogError("Failed to delete link %d: %v", linkID, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Link %d deleted with its clicks and conversions", linkID)
	utils.Success(c, "Link deleted successfully", nil)
}
