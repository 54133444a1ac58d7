// Package services – RequestService
//
// This file implements the RequestService, the read side of the request
// lifecycle: a client's own requests with their offer tallies, and the
// offers collected by a single request. Executors appear in these views
// only as anonymized labels; handles stay hidden until a deal releases
// them.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/repo"
)

// RequestService implements the request listing use-cases.
type RequestService struct {
	// DB is the database handle used for all request queries.
	DB *gorm.DB

	// DisplayMax caps offer listings when the caller passes no limit.
	DisplayMax int
}

// RequestSummary is one row of a client's request listing: the request plus
// how many offers it has collected so far.
type RequestSummary struct {
	domain.Request
	OfferCount int64 `json:"offer_count"`
}

// OfferView is an offer as shown to the client. The executor appears as an
// anonymized label, never as a handle.
type OfferView struct {
	ID            uint      `json:"id"`
	RequestID     uint      `json:"request_id"`
	ExecutorLabel string    `json:"executor_label"`
	RateType      string    `json:"rate_type"`
	RateValue     float64   `json:"rate_value"`
	Comment       string    `json:"comment,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListRequests returns a page of the client's requests, newest first, each
// with its offer count, plus the total number of requests the client owns.
func (s *RequestService) ListRequests(ctx context.Context, clientUserID uint, page, pageSize int) ([]RequestSummary, int64, error) {
	tr := otel.Tracer("services/RequestService")
	ctx, span := tr.Start(ctx, "ListRequests",
		trace.WithAttributes(
			attribute.Int("client.user_id", int(clientUserID)),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountRequests(ctx, s.DB, clientUserID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []RequestSummary{}, 0, nil
	}

	items, err := repo.ListRequestsPage(ctx, s.DB, clientUserID, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(items))
	for _, r := range items {
		ids = append(ids, r.ID)
	}
	counts, err := repo.CountOffersByRequests(ctx, s.DB, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]RequestSummary, 0, len(items))
	for _, r := range items {
		out = append(out, RequestSummary{Request: r, OfferCount: counts[r.ID]})
	}
	return out, total, nil
}

// ListOffers returns the offers collected by requestID, newest first,
// capped at max entries (the service's DisplayMax when max is zero or
// negative, then 20).
//
// Errors:
//   - ErrRequestNotFound when requestID does not exist.
func (s *RequestService) ListOffers(ctx context.Context, requestID uint, max int) ([]OfferView, error) {
	tr := otel.Tracer("services/RequestService")
	ctx, span := tr.Start(ctx, "ListOffers",
		trace.WithAttributes(attribute.Int("request.id", int(requestID))))
	defer span.End()

	if _, err := repo.GetRequest(ctx, s.DB, requestID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if max <= 0 {
		max = s.DisplayMax
	}
	if max <= 0 {
		max = 20
	}

	offers, err := repo.ListOffersByRequest(ctx, s.DB, requestID, max)
	if err != nil {
		return nil, err
	}

	out := make([]OfferView, 0, len(offers))
	for _, o := range offers {
		out = append(out, OfferView{
			ID:            o.ID,
			RequestID:     o.RequestID,
			ExecutorLabel: domain.Executor{ID: o.ExecutorID}.Label(),
			RateType:      o.RateType,
			RateValue:     o.RateValue,
			Comment:       o.Comment,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt,
		})
	}
	span.SetAttributes(attribute.Int("offers.count", len(out)))
	return out, nil
}
