package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an affiliate account. Admins are regular users with the
// IsAdmin flag set.
type User struct {
	gorm.Model
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsAdmin     bool      `json:"is_admin" gorm:"default:false"`
	IsBlocked   bool      `json:"is_blocked" gorm:"default:false"`
	GoogleID    *string   `gorm:"uniqueIndex;default:null" json:"-"`
	LastLoginAt time.Time `json:"last_login_at"`

	Links   []AffiliateLink `json:"links,omitempty" gorm:"foreignKey:UserID"`
	Payouts []Payout        `json:"payouts,omitempty" gorm:"foreignKey:UserID"`
}
