package controllers

import (
	"fmt"
	"os"

	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateLinkRequest represents the link generation request body
type GenerateLinkRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// currentUser pulls the authenticated user out of the gin context
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return models.User{}, false
	}
	return user, true
}

// trackingURL builds the public click-tracking URL for a link code
func trackingURL(code string) string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:" + utils.DefaultPort
	}
	return fmt.Sprintf("%s/%s/t/%s", base, utils.APIVersion, code)
}

// GenerateLink creates (or returns) the caller's affiliate link for a
// product. Calling it twice for the same product returns the same link.
func GenerateLink(c *gin.Context) {
	utils.LogInfo("GenerateLink called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req GenerateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("GenerateLink failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	link, err := utils.GetOrCreateAffiliateLink(config.DB, user.ID, req.ProductID)
	if err != nil {
		utils.LogError("Failed to generate link for user %d product %d: %v", user.ID, req.ProductID, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Link %s ready for user %d product %d", link.LinkCode, user.ID, req.ProductID)
	utils.Success(c, "Affiliate link ready", gin.H{
		"link": gin.H{
			"id":         link.ID,
			"product_id": link.ProductID,
			"link_code":  link.LinkCode,
			"url":        trackingURL(link.LinkCode),
		},
	})
}

// GetLinks returns the caller's links with click and conversion counts
func GetLinks(c *gin.Context) {
	utils.LogInfo("GetLinks called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.AffiliateLink{}).Where("user_id = ?", user.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count links for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch links", err.Error())
		return
	}

	var links []models.AffiliateLink
	if err := config.DB.Preload("Product").
		Where("user_id = ?", user.ID).
		Order("id ASC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&links).Error; err != nil {
		utils.LogError("Failed to fetch links for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch links", err.Error())
		return
	}

	list := make([]gin.H, len(links))
	for i, link := range links {
		var clicks, conversions int64
		config.DB.Model(&models.Click{}).Where("link_id = ?", link.ID).Count(&clicks)
		config.DB.Model(&models.Conversion{}).Where("link_id = ?", link.ID).Count(&conversions)

		list[i] = gin.H{
			"id":           link.ID,
			"product_id":   link.ProductID,
			"product_name": link.Product.Name,
			"link_code":    link.LinkCode,
			"url":          trackingURL(link.LinkCode),
			"clicks":       clicks,
			"conversions":  conversions,
			"created_at":   link.CreatedAt,
		}
	}

	utils.SuccessWithPagination(c, "Links retrieved successfully", list, total, pagination.Page, pagination.Limit)
}

// GetLinkQR renders the link's tracking URL as a QR code PNG
func GetLinkQR(c *gin.Context) {
	utils.LogInfo("GetLinkQR called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var link models.AffiliateLink
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&link).Error; err != nil {
		utils.LogError("Link not found for user %d: %v", user.ID, err)
		utils.NotFound(c, utils.ErrLinkNotFound)
		return
	}

	png, err := qrcode.Encode(trackingURL(link.LinkCode), qrcode.Medium, 256)
	if err != nil {
		utils.LogError("Failed to encode QR for link %d: %v", link.ID, err)
		utils.InternalServerError(c, "Failed to generate QR code", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=link-%s.png", link.LinkCode))
	c.Data(200, "image/png", png)
}
