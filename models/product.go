package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommissionType constants
const (
	CommissionTypePercentage = "percentage"
	CommissionTypeFixed      = "fixed"
)

// Product represents a promotable product with its commission rule
type Product struct {
	gorm.Model
	Name            string          `json:"name" gorm:"not null"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	CommissionType  string          `json:"commission_type" gorm:"type:varchar(20);not null;default:'percentage'"`
	CommissionValue decimal.Decimal `json:"commission_value" gorm:"type:decimal(12,2);not null;default:0"`
	IsActive        bool            `json:"is_active" gorm:"default:true"`
}

// PriceDisplay returns the price formatted for display
func (p *Product) PriceDisplay() string {
	return p.Price.StringFixed(2)
}
