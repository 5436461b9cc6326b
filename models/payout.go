package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutStatus constants
const (
	PayoutStatusPending  = "pending"
	PayoutStatusApproved = "approved"
	PayoutStatusRejected = "rejected"
	PayoutStatusPaid     = "paid"
)

// Payout is a withdrawal request against a user's available balance.
// Rows are created with status pending and only ever move forward
// through the transitions in ValidPayoutTransition.
type Payout struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `json:"user_id" gorm:"index;not null"`
	User        User            `json:"-" gorm:"foreignKey:UserID"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Status      string          `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Method      string          `json:"method" gorm:"type:varchar(50)"`
	Details     string          `json:"details" gorm:"type:varchar(255)"`
	RequestedAt time.Time       `json:"requested_at"`
	ProcessedAt *time.Time      `json:"processed_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ValidPayoutTransition reports whether a payout may move from one status
// to another: pending -> approved/rejected, approved -> paid. Rejected
// and paid are terminal.
func ValidPayoutTransition(from, to string) bool {
	switch from {
	case PayoutStatusPending:
		return to == PayoutStatusApproved || to == PayoutStatusRejected
	case PayoutStatusApproved:
		return to == PayoutStatusPaid
	default:
		return false
	}
}

// CountsAgainstBalance reports whether a payout in the given status is
// still committed against the user's balance. Any non-rejected payout
// counts; a rejected payout releases its reserved amount.
func CountsAgainstBalance(status string) bool {
	return status != PayoutStatusRejected
}
