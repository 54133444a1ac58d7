// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the singleton
// Setting row.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

// GetSettings fetches the singleton settings row, or ErrNotFound when the
// database has not been seeded.
func GetSettings(ctx context.Context, db *gorm.DB) (*domain.Setting, error) {
	var s domain.Setting
	err := db.WithContext(ctx).
		Where("id = ?", domain.SettingsRowID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetPreferOwnerFirst updates the owner-preference toggle, creating the
// singleton row if it is somehow missing.
func SetPreferOwnerFirst(ctx context.Context, db *gorm.DB, enabled bool) error {
	res := db.WithContext(ctx).
		Model(&domain.Setting{}).
		Where("id = ?", domain.SettingsRowID).
		Update("prefer_owner_first", enabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Select forces the toggle into the INSERT even when false, which a
		// plain Create would drop in favour of the column default.
		return db.WithContext(ctx).
			Select("ID", "PreferOwnerFirst").
			Create(&domain.Setting{ID: domain.SettingsRowID, PreferOwnerFirst: enabled}).Error
	}
	return nil
}
