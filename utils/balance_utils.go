package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var minimumPayout = decimal.RequireFromString(MinimumPayout)

// AvailableBalance derives a user's withdrawable balance: the sum of
// commissions over the user's conversions minus the sum of every
// non-rejected payout. This is the one place that rule lives; pending
// and approved payouts reserve balance just like paid ones, so a user
// cannot request the same money twice while a request is in flight.
func AvailableBalance(db *gorm.DB, userID uint) (decimal.Decimal, error) {
	balance := decimal.Zero

	var commissions []decimal.Decimal
	err := db.Model(&models.Conversion{}).
		Joins("JOIN affiliate_links ON affiliate_links.id = conversions.link_id").
		Where("affiliate_links.user_id = ?", userID).
		Pluck("conversions.commission", &commissions).Error
	if err != nil {
		return decimal.Zero, err
	}
	for _, commission := range commissions {
		balance = balance.Add(commission)
	}

	var reserved []decimal.Decimal
	err = db.Model(&models.Payout{}).
		Where("user_id = ? AND status <> ?", userID, models.PayoutStatusRejected).
		Pluck("amount", &reserved).Error
	if err != nil {
		return decimal.Zero, err
	}
	for _, amount := range reserved {
		balance = balance.Sub(amount)
	}

	return balance, nil
}

// RequestPayout validates a withdrawal request against the user's
// available balance and inserts the pending payout row. The balance is
// re-derived inside a transaction holding a row lock on the user, so
// concurrent requests from the same user serialize and cannot both
// spend the same balance.
func RequestPayout(db *gorm.DB, userID uint, amount decimal.Decimal, method, details string) (*models.Payout, error) {
	if !amount.IsPositive() {
		return nil, InvalidAmountError("Payout amount must be positive")
	}
	if amount.LessThan(minimumPayout) {
		return nil, InvalidAmountError(fmt.Sprintf("Minimum payout amount is %s", MinimumPayout))
	}

	var payout *models.Payout
	err := db.Transaction(func(tx *gorm.DB) error {
		locked := tx
		if tx.Dialector.Name() != "sqlite" {
			// sqlite has no FOR UPDATE; its writers already serialize
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var user models.User
		if err := locked.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError("User not found")
			}
			return err
		}

		balance, err := AvailableBalance(tx, userID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(balance) {
			return InsufficientBalanceError(fmt.Sprintf("Requested %s but only %s is available", amount.StringFixed(2), balance.StringFixed(2)))
		}

		row := models.Payout{
			UserID:      userID,
			Amount:      amount.Round(2),
			Status:      models.PayoutStatusPending,
			Method:      method,
			Details:     details,
			RequestedAt: time.Now().UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		payout = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

// UpdatePayoutStatus moves a payout through its status lifecycle.
// Transitions run forward only: pending to approved or rejected,
// approved to paid. Anything else is a conflict.
func UpdatePayoutStatus(db *gorm.DB, payoutID uint, newStatus string) (*models.Payout, error) {
	switch newStatus {
	case models.PayoutStatusApproved, models.PayoutStatusRejected, models.PayoutStatusPaid:
	default:
		return nil, BadRequestError(fmt.Sprintf("Unknown payout status %q", newStatus), nil)
	}

	var payout models.Payout
	err := db.Transaction(func(tx *gorm.DB) error {
		locked := tx
		if tx.Dialector.Name() != "sqlite" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := locked.First(&payout, payoutID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError(ErrPayoutNotFound)
			}
			return err
		}

		if !models.ValidPayoutTransition(payout.Status, newStatus) {
			return ConflictError(fmt.Sprintf("Cannot move payout from %s to %s", payout.Status, newStatus), nil)
		}

		now := time.Now().UTC()
		payout.Status = newStatus
		payout.ProcessedAt = &now
		return tx.Save(&payout).Error
	})
	if err != nil {
		return nil, err
	}
	return &payout, nil
}
