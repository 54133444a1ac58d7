// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Deal
// model, the record that gates contact disclosure behind acceptance.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

// CreateDeal inserts a Deal for the given request/offer pair with contacts
// still withheld. The unique index on offer_id makes a second deal for the
// same offer a constraint violation; callers map that to their own error.
func CreateDeal(ctx context.Context, db *gorm.DB, requestID, offerID uint) (*domain.Deal, error) {
	d := &domain.Deal{
		RequestID:        requestID,
		OfferID:          offerID,
		ContactsReleased: false,
		CreatedAt:        time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// ReleaseDealContacts flips contacts_released to true on the deal
// identified by id. Returns ErrNotFound when no row was updated.
func ReleaseDealContacts(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).
		Model(&domain.Deal{}).
		Where("id = ?", id).
		Update("contacts_released", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetDealByOffer fetches the deal created for an offer, or ErrNotFound.
func GetDealByOffer(ctx context.Context, db *gorm.DB, offerID uint) (*domain.Deal, error) {
	var d domain.Deal
	err := db.WithContext(ctx).
		Where("offer_id = ?", offerID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}
