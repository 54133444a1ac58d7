// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Request
// model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

// CreateRequest inserts a new Request row. Requests are written exactly
// once, fully formed; there is no update path. CreatedAt is set to UTC and
// Status defaults to "published" when unset.
func CreateRequest(ctx context.Context, db *gorm.DB, r *domain.Request) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Status == "" {
		r.Status = domain.StatusPublished
	}
	return db.WithContext(ctx).Create(r).Error
}

// GetRequest fetches a single request by primary key, or ErrNotFound.
func GetRequest(ctx context.Context, db *gorm.DB, id uint) (*domain.Request, error) {
	var r domain.Request
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CountRequests returns the total number of requests posted by the client
// user. On DB error, it returns the error.
func CountRequests(ctx context.Context, db *gorm.DB, clientUserID uint) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Request{}).
		Where("client_user_id = ?", clientUserID).
		Count(&total).Error
	return total, err
}

// ListRequestsPage returns a paginated slice of the client's requests,
// newest first. Use CountRequests to obtain the total for pagination
// metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListRequestsPage(ctx context.Context, db *gorm.DB, clientUserID uint, offset, limit int) ([]domain.Request, error) {
	var out []domain.Request
	err := db.WithContext(ctx).
		Where("client_user_id = ?", clientUserID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
