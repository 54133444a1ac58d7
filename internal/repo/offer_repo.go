// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Offer
// model, including the composite acceptance lookup that joins an offer with
// its executor's addressing details.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

// OfferAcceptance is the read model for the accept path: the offer's keys
// plus the executor's addressing fields, resolved in one LEFT JOIN so that
// an offer referencing a vanished executor still loads (with nil addressing).
type OfferAcceptance struct {
	OfferID         uint
	RequestID       uint
	ExecutorID      uint
	Status          string
	ExecutorUserID  *uint
	DirectChannelID *int64
}

// CreateOffer inserts a new Offer row with status "active" unless the
// caller set one. Duplicate submissions by the same executor on the same
// request are allowed (append-only). CreatedAt is set to UTC.
func CreateOffer(ctx context.Context, db *gorm.DB, o *domain.Offer) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	if o.Status == "" {
		o.Status = domain.OfferActive
	}
	return db.WithContext(ctx).Create(o).Error
}

// GetOffer fetches a single offer by primary key, or ErrNotFound.
func GetOffer(ctx context.Context, db *gorm.DB, id uint) (*domain.Offer, error) {
	var o domain.Offer
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOffersByRequest returns the offers on a request, newest first, capped
// at limit (pass 0 for no cap).
func ListOffersByRequest(ctx context.Context, db *gorm.DB, requestID uint, limit int) ([]domain.Offer, error) {
	q := db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []domain.Offer
	err := q.Find(&out).Error
	return out, err
}

// CountOffersByRequests returns, for the given request ids, how many offers
// each has collected. Requests with no offers are absent from the map.
func CountOffersByRequests(ctx context.Context, db *gorm.DB, requestIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(requestIDs))
	if len(requestIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		RequestID uint
		N         int64
	}
	err := db.WithContext(ctx).
		Model(&domain.Offer{}).
		Select("request_id, COUNT(*) AS n").
		Where("request_id IN ?", requestIDs).
		Group("request_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.RequestID] = r.N
	}
	return out, nil
}

// UpdateOfferStatus sets the status of the offer identified by id. Returns
// ErrNotFound when no row was updated.
func UpdateOfferStatus(ctx context.Context, db *gorm.DB, id uint, status string) error {
	res := db.WithContext(ctx).
		Model(&domain.Offer{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetOfferAcceptance loads the composite acceptance row for an offer id:
// the offer's request and executor keys plus the executor's bound user id
// and direct channel id. Returns ErrNotFound when the offer is missing.
func GetOfferAcceptance(ctx context.Context, db *gorm.DB, offerID uint) (*OfferAcceptance, error) {
	var row OfferAcceptance
	err := db.WithContext(ctx).
		Table("offers").
		Select("offers.id AS offer_id, offers.request_id, offers.executor_id, offers.status, executors.user_id AS executor_user_id, executors.direct_channel_id").
		Joins("LEFT JOIN executors ON executors.id = offers.executor_id").
		Where("offers.id = ?", offerID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
