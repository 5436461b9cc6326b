package controllers

import (
	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest represents the create/update product request body
type ProductRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	CommissionType  string          `json:"commission_type" binding:"required"`
	CommissionValue decimal.Decimal `json:"commission_value"`
	IsActive        *bool           `json:"is_active"`
}

// CreateProduct handles admin product creation
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("CreateProduct failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if !req.Price.IsPositive() {
		utils.BadRequest(c, "Invalid price", "Price must be greater than 0")
		return
	}
	if valid, msg := utils.ValidateCommissionRule(req.CommissionType, req.CommissionValue); !valid {
		utils.LogError("CreateProduct failed - Invalid commission rule: %s", msg)
		utils.BadRequest(c, "Invalid commission rule", msg)
		return
	}

	product := models.Product{
		Name:            utils.SanitizeString(req.Name),
		Description:     utils.SanitizeString(req.Description),
		Price:           req.Price.Round(2),
		CommissionType:  req.CommissionType,
		CommissionValue: req.CommissionValue.Round(2),
		IsActive:        true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Product created: %d (%s)", product.ID, product.Name)
	utils.Created(c, "Product created successfully", gin.H{"product": productResponse(&product)})
}

// UpdateProduct handles admin product updates. Changing the commission
// rule only affects future conversions; past commissions stay frozen.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, utils.ErrProductNotFound)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("UpdateProduct failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if !req.Price.IsPositive() {
		utils.BadRequest(c, "Invalid price", "Price must be greater than 0")
		return
	}
	if valid, msg := utils.ValidateCommissionRule(req.CommissionType, req.CommissionValue); !valid {
		utils.BadRequest(c, "Invalid commission rule", msg)
		return
	}

	product.Name = utils.SanitizeString(req.Name)
	product.Description = utils.SanitizeString(req.Description)
	product.Price = req.Price.Round(2)
	product.CommissionType = req.CommissionType
	product.CommissionValue = req.CommissionValue.Round(2)
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.LogInfo("Product updated: %d", product.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": productResponse(&product)})
}

// DeleteProduct soft-deletes a product
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, utils.ErrProductNotFound)
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.LogInfo("Product deleted: %d", product.ID)
	utils.Success(c, "Product deleted successfully", nil)
}

func productResponse(product *models.Product) gin.H {
	return gin.H{
		"id":               product.ID,
		"name":             product.Name,
		"description":      product.Description,
		"price":            product.Price,
		"price_display":    product.PriceDisplay(),
		"commission_type":  product.CommissionType,
		"commission_value": product.CommissionValue,
		"is_active":        product.IsActive,
	}
}
