package controllers

import (
	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"github.com/gin-gonic/gin"
)

// GetUsers returns a paginated user list, optionally filtered by a
// search term over username and email
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	pagination := utils.NewPagination(c)
	search := c.Query("search")

	query := config.DB.Model(&models.User{})
	if search != "" {
		like := "%" + utils.SanitizeString(search) + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	var users []models.User
	if err := query.Order("id ASC").Limit(pagination.Limit).Offset(pagination.Offset).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	list := make([]gin.H, len(users))
	for i, user := range users {
		list[i] = gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"is_admin":   user.IsAdmin,
			"is_blocked": user.IsBlocked,
			"created_at": user.CreatedAt,
		}
	}

	utils.SuccessWithPagination(c, "Users retrieved successfully", list, total, pagination.Page, pagination.Limit)
}

func setUserBlocked(c *gin.Context, blocked bool) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.LogError("User not found: %v", err)
		utils.NotFound(c, "User not found")
		return
	}

	user.IsBlocked = blocked
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", err.Error())
		return
	}

	action := "unblocked"
	if blocked {
		action = "blocked"
	}
	utils.LogInfo("User %d %s", user.ID, action)
	utils.Success(c, "User "+action+" successfully", gin.H{"id": user.ID, "is_blocked": user.IsBlocked})
}

// BlockUser blocks a user account
func BlockUser(c *gin.Context) {
	setUserBlocked(c, true)
}

// UnblockUser unblocks a user account
func UnblockUser(c *gin.Context) {
	setUserBlocked(c, false)
}
