package utils

import (
	"errors"
	"strings"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateLinkCode returns a crypto-random affiliate link code. Codes
// are drawn from a v4 UUID so they cannot be guessed from the user or
// product that owns them.
func GenerateLinkCode() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:LinkCodeLength]
}

// GetOrCreateAffiliateLink returns the link for a (user, product) pair,
// creating it on first call. The unique index on (user_id, product_id)
// makes the operation idempotent even when two identical requests race:
// the loser of the race re-reads the winner's row.
func GetOrCreateAffiliateLink(db *gorm.DB, userID, productID uint) (*models.AffiliateLink, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError(ErrProductNotFound)
		}
		return nil, err
	}

	var link models.AffiliateLink
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&link).Error
	if err == nil {
		return &link, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	for attempt := 0; attempt < 3; attempt++ {
		link = models.AffiliateLink{
			UserID:    userID,
			ProductID: productID,
			LinkCode:  GenerateLinkCode(),
		}
		err = db.Create(&link).Error
		if err == nil {
			return &link, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Either a concurrent request won the (user, product) race
			// or the code collided. Re-read covers the first case.
			var existing models.AffiliateLink
			if lookupErr := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error; lookupErr == nil {
				return &existing, nil
			}
			continue
		}
		return nil, err
	}
	return nil, ConflictError("Could not allocate a unique link code", err)
}

// ResolveLinkCode looks up a link by its code with the product loaded
func ResolveLinkCode(db *gorm.DB, code string) (*models.AffiliateLink, error) {
	var link models.AffiliateLink
	if err := db.Preload("Product").Where("link_code = ?", code).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError(ErrLinkNotFound)
		}
		return nil, err
	}
	return &link, nil
}

// DeleteAffiliateLink removes a link together with its clicks and
// conversions. Used by the admin cleanup path only; tracking data never
// outlives the link it belongs to.
func DeleteAffiliateLink(db *gorm.DB, linkID uint) error {
	var link models.AffiliateLink
	if err := db.First(&link, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError(ErrLinkNotFound)
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", link.ID).Delete(&models.Click{}).Error; err != nil {
			return err
		}
		if err := tx.Where("link_id = ?", link.ID).Delete(&models.Conversion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&link).Error
	})
}
