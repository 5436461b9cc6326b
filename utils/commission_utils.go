package utils

import (
	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalculateCommission applies a product's commission rule to a gross
// sale amount. Percentage rules take amount * value / 100; fixed rules
// pay the configured value regardless of the amount.
func CalculateCommission(product *models.Product, amount decimal.Decimal) decimal.Decimal {
	if product.CommissionType == models.CommissionTypeFixed {
		return product.CommissionValue.Round(2)
	}
	return amount.Mul(product.CommissionValue).Div(decimal.NewFromInt(100)).Round(2)
}

// RecordClick appends a click event for the link behind the given code.
// Clicks never touch commission logic.
func RecordClick(db *gorm.DB, code, ipAddress, userAgent string) (*models.Click, error) {
	link, err := ResolveLinkCode(db, code)
	if err != nil {
		return nil, err
	}

	click := models.Click{
		LinkID:    link.ID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := db.Create(&click).Error; err != nil {
		return nil, err
	}
	return &click, nil
}

// RecordConversion appends a conversion for the link behind the given
// code. The commission is computed from the product's rule as it stands
// right now and persisted on the row; later rule changes never alter it.
func RecordConversion(db *gorm.DB, code string, amount decimal.Decimal) (*models.Conversion, error) {
	if !amount.IsPositive() {
		return nil, InvalidAmountError("Conversion amount must be positive")
	}

	link, err := ResolveLinkCode(db, code)
	if err != nil {
		return nil, err
	}
	// Preload skips soft-deleted products; a zero-value product must not
	// silently earn a 0.00 commission.
	if link.Product.ID == 0 {
		return nil, NotFoundError(ErrProductNotFound)
	}

	conversion := models.Conversion{
		LinkID:     link.ID,
		Amount:     amount.Round(2),
		Commission: CalculateCommission(&link.Product, amount),
	}
	if err := db.Create(&conversion).Error; err != nil {
		return nil, err
	}
	return &conversion, nil
}
