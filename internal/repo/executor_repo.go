// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Executor
// model, including the indexed pending-resolution updates that bind
// executors to users on first contact.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

// ExecutorAccount is a read model for the administrative listing: an
// executor joined with its bound user's addressing details, when bound.
type ExecutorAccount struct {
	domain.Executor
	BoundHandle    *string `json:"bound_handle,omitempty"`
	BoundChannelID *int64  `json:"bound_channel_id,omitempty"`
}

// CreateExecutor inserts a new Executor row. The caller decides the
// addressing path (pending handle or direct channel id) and whether a
// user id is already bound. CreatedAt is set to UTC.
func CreateExecutor(ctx context.Context, db *gorm.DB, e *domain.Executor) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(e).Error
}

// GetExecutor fetches a single executor by primary key, or ErrNotFound.
func GetExecutor(ctx context.Context, db *gorm.DB, id uint) (*domain.Executor, error) {
	var e domain.Executor
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListExecutorAccounts returns all executors (active or not) joined with
// their bound user's handle and channel id, ordered by id ascending. Used
// by the administrative listing.
func ListExecutorAccounts(ctx context.Context, db *gorm.DB) ([]ExecutorAccount, error) {
	var out []ExecutorAccount
	err := db.WithContext(ctx).
		Table("executors").
		Select("executors.*, users.handle AS bound_handle, users.channel_id AS bound_channel_id").
		Joins("LEFT JOIN users ON users.id = executors.user_id").
		Order("executors.id asc").
		Scan(&out).Error
	return out, err
}

// ListActiveExecutorAccounts returns the matcher's candidate pool: executors
// with is_active = true joined with their bound user's addressing details.
// Category and location checks happen in the matcher, not here.
func ListActiveExecutorAccounts(ctx context.Context, db *gorm.DB) ([]ExecutorAccount, error) {
	var out []ExecutorAccount
	err := db.WithContext(ctx).
		Table("executors").
		Select("executors.*, users.handle AS bound_handle, users.channel_id AS bound_channel_id").
		Joins("LEFT JOIN users ON users.id = executors.user_id").
		Where("executors.is_active = ?", true).
		Order("executors.id asc").
		Scan(&out).Error
	return out, err
}

// UpdateExecutorLocation sets both coordinates of the executor identified
// by id. Returns ErrNotFound when no row was updated.
func UpdateExecutorLocation(ctx context.Context, db *gorm.DB, id uint, lat, lon float64) error {
	res := db.WithContext(ctx).
		Model(&domain.Executor{}).
		Where("id = ?", id).
		Updates(map[string]any{"lat": lat, "lon": lon})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateExecutorActive toggles the is_active flag of the executor
// identified by id. Returns ErrNotFound when no row was updated.
func UpdateExecutorActive(ctx context.Context, db *gorm.DB, id uint, active bool) error {
	res := db.WithContext(ctx).
		Model(&domain.Executor{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BindPendingByHandle binds every unbound executor whose pending handle
// equals handle to userID and clears the pending handle. Returns the number
// of executors bound. The pending_handle column is indexed, so this is a
// point lookup, not a scan.
func BindPendingByHandle(ctx context.Context, db *gorm.DB, handle string, userID uint) (int64, error) {
	if handle == "" {
		return 0, nil
	}
	res := db.WithContext(ctx).
		Model(&domain.Executor{}).
		Where("pending_handle = ? AND user_id IS NULL", handle).
		Updates(map[string]any{"user_id": userID, "pending_handle": ""})
	return res.RowsAffected, res.Error
}

// BindPendingByChannel binds every unbound executor whose direct channel id
// equals channelID to userID. The direct channel id is deliberately kept:
// it remains the delivery fallback when the bound user is unreachable.
func BindPendingByChannel(ctx context.Context, db *gorm.DB, channelID int64, userID uint) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Executor{}).
		Where("direct_channel_id = ? AND user_id IS NULL", channelID).
		Update("user_id", userID)
	return res.RowsAffected, res.Error
}
