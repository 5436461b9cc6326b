package controllers

import (
	"errors"

	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/Sreehari-23/LinkLedger/utils"
	"gorm.io/gorm"
)

// CreateDefaultAdmin seeds an admin account from the environment so a
// fresh deployment has a working admin login
func CreateDefaultAdmin() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		utils.LogInfo("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	var admin models.User
	err = config.DB.Where("email = ?", cfg.AdminEmail).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin = models.User{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Password: hashedPassword,
		IsAdmin:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Default admin created: %s", cfg.AdminEmail)
	return nil
}
