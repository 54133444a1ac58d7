// Package services – MatchService
//
// This file implements MatchService, the candidate matcher behind both
// dispatch modes. Given a published request it narrows the active executor
// pool by category membership, presence of coordinates, and haversine
// distance within each executor's service radius, then orders the survivors
// with the owner-preference policy read from settings on every call.
//
// Observability: matching is OpenTelemetry-instrumented; spans carry the
// request identifier and the resulting candidate count.
package services

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/geo"
	"github.com/tbourn/go-broker-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Candidate is one matched executor, carrying everything the dispatch and
// catalog paths need: the anonymized label, ranking inputs, and the resolved
// addressing details for delivery.
type Candidate struct {
	ExecutorID      uint    `json:"executor_id"`
	Label           string  `json:"label"`
	City            string  `json:"city,omitempty"`
	DistanceKm      float64 `json:"distance_km"`
	IsOwner         bool    `json:"is_owner"`
	BoundChannelID  *int64  `json:"-"`
	DirectChannelID *int64  `json:"-"`
}

// MatchService computes ranked candidate lists for requests.
type MatchService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// FindCandidates returns the ranked candidates for a request.
//
// Filtering: executor must be active, list the request's category (exact tag
// match), have both coordinates, and lie within its own service radius of the
// request location (boundary inclusive). Ordering: owners first when the
// prefer-owner setting is on, then distance ascending; ties keep registration
// order (the sort is stable).
//
// A missing request yields an empty list, not an error: dispatch decides how
// to surface that.
func (s *MatchService) FindCandidates(ctx context.Context, requestID uint) ([]Candidate, error) {
	tr := otel.Tracer("services/MatchService")
	ctx, span := tr.Start(ctx, "FindCandidates",
		trace.WithAttributes(attribute.Int("request.id", int(requestID))),
	)
	defer span.End()

	req, err := repo.GetRequest(ctx, s.DB, requestID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return []Candidate{}, nil
		}
		return nil, err
	}

	preferOwner := true
	if st, err := repo.GetSettings(ctx, s.DB); err == nil {
		preferOwner = st.PreferOwnerFirst
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	pool, err := repo.ListActiveExecutorAccounts(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(pool))
	for _, e := range pool {
		if !e.HasCategory(req.Category) || !e.HasLocation() {
			continue
		}
		d := geo.DistanceKm(req.Lat, req.Lon, *e.Lat, *e.Lon)
		if d > e.RadiusKm {
			continue
		}
		out = append(out, Candidate{
			ExecutorID:      e.ID,
			Label:           e.Label(),
			City:            e.City,
			DistanceKm:      d,
			IsOwner:         e.IsOwner,
			BoundChannelID:  e.BoundChannelID,
			DirectChannelID: e.DirectChannelID,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if preferOwner && out[i].IsOwner != out[j].IsOwner {
			return out[i].IsOwner
		}
		return out[i].DistanceKm < out[j].DistanceKm
	})

	span.SetAttributes(attribute.Int("candidates.count", len(out)))
	return out, nil
}
