// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

// RequestsStats returns aggregate metadata for a client's requests: the
// total number of rows and the greatest CreatedAt timestamp among them.
//
// It executes two lightweight queries against the requests table scoped to
// the provided clientUserID. When the client has no requests, the returned
// count is 0 and maxCreatedAt is nil.
//
// Return values:
//   - count:        total requests for clientUserID
//   - maxCreatedAt: pointer to the greatest CreatedAt, or nil if no rows
//   - err:          database error, if any
func RequestsStats(ctx context.Context, db *gorm.DB, clientUserID uint) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Request{}).Where("client_user_id = ?", clientUserID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}

// OffersStats returns aggregate metadata for offers on a given request: the
// total number of rows and the greatest UpdatedAt timestamp among them
// (offers mutate when accepted, so UpdatedAt is the freshness signal).
//
// Return values:
//   - count:        total offers for requestID
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func OffersStats(ctx context.Context, db *gorm.DB, requestID uint) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Offer{}).Where("request_id = ?", requestID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
