package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AffiliateLink binds a referring user to a product through a unique
// tracking code. The composite unique index keeps one link per
// (user, product) pair even under concurrent generate calls.
type AffiliateLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_links_user_product"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_links_user_product"`
	Product   Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	LinkCode  string    `json:"link_code" gorm:"type:varchar(32);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Clicks      []Click      `json:"-" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
	Conversions []Conversion `json:"-" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}

// Click is a raw traffic event attributed to a link. Append-only.
type Click struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LinkID    uint      `json:"link_id" gorm:"index;not null"`
	IPAddress string    `json:"ip_address" gorm:"size:50"`
	UserAgent string    `json:"user_agent" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversion is a confirmed sale attributed to a link. The commission is
// computed from the product's rule at insert time and never recomputed,
// so later rule changes cannot alter what was owed.
type Conversion struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	LinkID     uint            `json:"link_id" gorm:"index;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Commission decimal.Decimal `json:"commission" gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
}
