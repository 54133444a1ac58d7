// Package services – SettingsService
//
// Accessor for the single global settings row. The row is seeded at
// startup, but every read still tolerates its absence and falls back to the
// defaults, so a wiped database never breaks matching.
package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/repo"
)

// SettingsService implements the admin use-cases around global settings.
type SettingsService struct {
	// DB is the database handle used for settings access.
	DB *gorm.DB
}

// Get returns the current settings. A missing row reads as the defaults.
func (s *SettingsService) Get(ctx context.Context) (*domain.Setting, error) {
	tr := otel.Tracer("services/SettingsService")
	ctx, span := tr.Start(ctx, "Get")
	defer span.End()

	st, err := repo.GetSettings(ctx, s.DB)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &domain.Setting{ID: domain.SettingsRowID, PreferOwnerFirst: true}, nil
		}
		return nil, err
	}
	return st, nil
}

// SetPreferOwnerFirst flips whether owner-flagged executors rank ahead of
// subcontractors in match results. The row is created if missing.
func (s *SettingsService) SetPreferOwnerFirst(ctx context.Context, enabled bool) error {
	tr := otel.Tracer("services/SettingsService")
	ctx, span := tr.Start(ctx, "SetPreferOwnerFirst",
		trace.WithAttributes(attribute.Bool("settings.prefer_owner_first", enabled)))
	defer span.End()

	return repo.SetPreferOwnerFirst(ctx, s.DB, enabled)
}
