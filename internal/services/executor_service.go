// Package services – ExecutorService
//
// This file implements the ExecutorService, the administrative surface for
// the executor registry. Executors are capability records, not accounts:
// an admin registers them by chat handle or by direct channel id, possibly
// long before the person behind the record ever contacts the system. The
// service normalizes the registration input, enforces the
// exactly-one-addressing-path rule and handles the activation and location
// upkeep that keeps a record matchable.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/repo"
)

// ExecutorService implements the admin use-cases around the executor
// registry.
type ExecutorService struct {
	// DB is the database handle used for all registry operations.
	DB *gorm.DB

	// DefaultRadiusKm is applied when a registration does not carry a
	// positive radius.
	DefaultRadiusKm float64
}

// Register creates an executor record.
//
// Semantics and validation:
//   - Exactly one addressing path must be given: a chat handle or a direct
//     channel id; anything else yields ErrAddressingPath.
//   - A handle is stored lowercased as the pending handle and resolves to a
//     user on that user's next contact.
//   - A direct channel id is kept as the delivery fallback; when a user
//     with that channel already exists, the record is bound immediately.
//   - categories are trimmed and empties dropped; none left yields
//     ErrNoCategories.
//   - city is whitespace-collapsed and title-cased.
//   - A non-positive radiusKm falls back to the service default, then 50.
//
// The record starts active and without a location; it stays out of match
// results until SetLocation runs.
func (s *ExecutorService) Register(ctx context.Context, handle string, channelID *int64, categories []string, city string, radiusKm float64, isOwner bool) (*domain.Executor, error) {
	tr := otel.Tracer("services/ExecutorService")
	ctx, span := tr.Start(ctx, "Register")
	defer span.End()

	handle = strings.ToLower(normalizeHandle(handle))
	if (handle == "") == (channelID == nil) {
		return nil, ErrAddressingPath
	}

	tags := make([]string, 0, len(categories))
	for _, c := range categories {
		if tag := strings.TrimSpace(c); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil, ErrNoCategories
	}

	if radiusKm <= 0 {
		radiusKm = s.DefaultRadiusKm
	}
	if radiusKm <= 0 {
		radiusKm = 50
	}

	e := &domain.Executor{
		PendingHandle:   handle,
		DirectChannelID: channelID,
		Categories:      strings.Join(tags, ","),
		City:            normalizeCity(city),
		RadiusKm:        radiusKm,
		IsOwner:         isOwner,
		IsActive:        true,
	}
	if channelID != nil {
		if u, err := repo.GetUserByChannel(ctx, s.DB, *channelID); err == nil {
			e.UserID = &u.ID
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}

	if err := repo.CreateExecutor(ctx, s.DB, e); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("executor.id", int(e.ID)))
	return e, nil
}

// List returns every executor record, active or not, with its addressing
// state resolved (bound handle and channel where a user is attached).
func (s *ExecutorService) List(ctx context.Context) ([]repo.ExecutorAccount, error) {
	tr := otel.Tracer("services/ExecutorService")
	ctx, span := tr.Start(ctx, "List")
	defer span.End()

	accounts, err := repo.ListExecutorAccounts(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("executors.count", len(accounts)))
	return accounts, nil
}

// SetLocation records the executor's service coordinates, the final step
// that makes a record matchable. Coordinates outside the valid ranges yield
// ErrInvalidLocation; an unknown id yields ErrExecutorNotFound.
func (s *ExecutorService) SetLocation(ctx context.Context, id uint, lat, lon float64) error {
	tr := otel.Tracer("services/ExecutorService")
	ctx, span := tr.Start(ctx, "SetLocation",
		trace.WithAttributes(attribute.Int("executor.id", int(id))))
	defer span.End()

	if !validCoords(lat, lon) {
		return ErrInvalidLocation
	}
	if err := repo.UpdateExecutorLocation(ctx, s.DB, id, lat, lon); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrExecutorNotFound
		}
		return err
	}
	return nil
}

// SetActive flips the administrative activation switch. An unknown id
// yields ErrExecutorNotFound.
func (s *ExecutorService) SetActive(ctx context.Context, id uint, active bool) error {
	tr := otel.Tracer("services/ExecutorService")
	ctx, span := tr.Start(ctx, "SetActive", trace.WithAttributes(
		attribute.Int("executor.id", int(id)),
		attribute.Bool("executor.active", active),
	))
	defer span.End()

	if err := repo.UpdateExecutorActive(ctx, s.DB, id, active); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrExecutorNotFound
		}
		return err
	}
	return nil
}

// normalizeCity collapses inner whitespace and title-cases the name so
// " nizhny  novgorod " and "NIZHNY NOVGOROD" store identically.
func normalizeCity(s string) string {
	s = whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)

// validCoords reports whether lat/lon form a real-world coordinate pair.
func validCoords(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
