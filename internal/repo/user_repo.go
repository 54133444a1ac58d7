// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - CreateUser(ctx, db, channelID, handle, displayName, role) -> *domain.User, error
//     Inserts a new User row keyed by the unique chat-channel id.
//
//   - GetUserByChannel(ctx, db, channelID) -> *domain.User, error
//     Fetches a user by channel id, or ErrNotFound if missing.
//
//   - GetUserByID(ctx, db, id) -> *domain.User, error
//     Fetches a user by primary key, or ErrNotFound if missing.
//
//   - UpdateUserRole(ctx, db, id, role) -> error
//     Updates the role of a user. Returns ErrNotFound if the user does
//     not exist.
//
//   - UpdateUserProfile(ctx, db, id, handle, displayName) -> error
//     Refreshes the chat-profile fields (handle, display name). Returns
//     ErrNotFound if the user does not exist.
//
// Usage:
//
//	// Within a service layer
//	u, err := repo.GetUserByChannel(ctx, db, actor.ChannelID)
//	if errors.Is(err, repo.ErrNotFound) {
//	    // first contact: create the user, then reconcile pending executors
//	} else if err != nil {
//	    // handle DB failure
//	}
//
// This repository is designed to be wrapped by a higher-level service
// (see services.IdentityService) which enforces role rules and pending
// executor reconciliation.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateUser inserts a new User row addressed by channelID. Handle and
// displayName may be empty; role may be empty when the user has not picked
// one yet. CreatedAt is set to UTC.
//
// On success, it returns the persisted User. On failure (including a
// duplicate channel id), it returns the DB error.
func CreateUser(ctx context.Context, db *gorm.DB, channelID int64, handle, displayName, role string) (*domain.User, error) {
	u := &domain.User{
		ChannelID:   channelID,
		Handle:      handle,
		DisplayName: displayName,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByChannel fetches a single user by its unique chat-channel id.
// If the record does not exist, it returns ErrNotFound.
func GetUserByChannel(ctx context.Context, db *gorm.DB, channelID int64) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID fetches a single user by primary key. If the record does not
// exist, it returns ErrNotFound.
func GetUserByID(ctx context.Context, db *gorm.DB, id uint) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUserRole sets the role of the user identified by id. If no rows are
// affected (user missing), it returns ErrNotFound. On DB error, the raw
// error is returned.
func UpdateUserRole(ctx context.Context, db *gorm.DB, id uint, role string) error {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateUserProfile refreshes the chat-profile fields of the user identified
// by id. The map form is used so empty strings are written rather than
// skipped. If no rows are affected (user missing), it returns ErrNotFound.
func UpdateUserProfile(ctx context.Context, db *gorm.DB, id uint, handle, displayName string) error {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"handle": handle, "display_name": displayName})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
