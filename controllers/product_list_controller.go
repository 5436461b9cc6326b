package controllers

import (
	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
)

// GetProducts returns active products for affiliates to browse
func GetProducts(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	var products []models.Product
	if err := query.Order("id ASC").Limit(pagination.Limit).Offset(pagination.Offset).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	list := make([]gin.H, len(products))
	for i := range products {
		list[i] = productResponse(&products[i])
	}

	utils.SuccessWithPagination(c, "Products retrieved successfully", list, total, pagination.Page, pagination.Limit)
}

// GetProductDetails returns a single product
func GetProductDetails(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, utils.ErrProductNotFound)
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{"product": productResponse(&product)})
}
