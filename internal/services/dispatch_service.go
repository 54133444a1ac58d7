// Package services – DispatchService
//
// This file implements the DispatchService, which moves a published request
// towards the executors that can serve it. Auction requests are broadcast:
// every ranked candidate gets a notice with an offer button. Catalog
// requests are pulled: the client receives the ranked list and picks whom
// to ask, which triggers a single direct send. Delivery is best effort per
// recipient; one refused channel never aborts the rest of a broadcast.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/geo"
	"github.com/tbourn/go-broker-backend/internal/notify"
	"github.com/tbourn/go-broker-backend/internal/repo"
)

// DispatchService fans requests out to executors. It owns notice
// composition and addressing; ranking comes from the Matcher and the
// actual delivery from the Sender.
type DispatchService struct {
	// DB is the database handle used for request and executor lookups.
	DB *gorm.DB

	// Matcher supplies the ranked candidate list for a request.
	Matcher *MatchService

	// Sender delivers notices to executor channels.
	Sender notify.Sender

	// DisplayMax caps catalog listings when the caller passes no limit.
	DisplayMax int
}

// CatalogEntry is one row of a catalog listing: a ranked candidate plus the
// action token the client presses to request an offer from that executor.
type CatalogEntry struct {
	Candidate
	Token string `json:"token"`
}

// Broadcast pushes a request notice to every matched candidate and reports
// how many sends succeeded out of how many candidates matched.
//
// Addressing per candidate prefers the bound user's channel and falls back
// to the direct channel; candidates with neither are skipped. A failed send
// is counted and skipped, never returned: the broadcast always runs to the
// end of the candidate list.
//
// Errors:
//   - ErrRequestNotFound when requestID does not exist.
//   - The underlying error when the lookup or the matcher fails.
func (s *DispatchService) Broadcast(ctx context.Context, requestID uint) (delivered, total int, err error) {
	tr := otel.Tracer("services/DispatchService")
	ctx, span := tr.Start(ctx, "Broadcast",
		trace.WithAttributes(attribute.Int("request.id", int(requestID))))
	defer span.End()

	req, err := repo.GetRequest(ctx, s.DB, requestID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, 0, ErrRequestNotFound
		}
		return 0, 0, err
	}

	cands, err := s.Matcher.FindCandidates(ctx, requestID)
	if err != nil {
		return 0, 0, err
	}

	for _, c := range cands {
		channel, ok := candidateChannel(c)
		if !ok {
			dispatchDeliveries.WithLabelValues("unaddressed").Inc()
			continue
		}
		buttons := []notify.Button{{
			Label: "Make an offer",
			Token: fmt.Sprintf("offer:%d:%d", requestID, c.ExecutorID),
		}}
		if err := s.Sender.Send(ctx, channel, composeRequestNotice(req, &c.DistanceKm), buttons); err != nil {
			dispatchDeliveries.WithLabelValues("failed").Inc()
			continue
		}
		dispatchDeliveries.WithLabelValues("delivered").Inc()
		delivered++
	}

	span.SetAttributes(
		attribute.Int("dispatch.candidates", len(cands)),
		attribute.Int("dispatch.delivered", delivered),
	)
	return delivered, len(cands), nil
}

// Catalog returns the ranked candidate list for a catalog-mode request,
// capped at max entries (the service's DisplayMax when max is zero or
// negative). Each entry carries the token that turns a client's pick into
// a direct send.
//
// Errors:
//   - ErrRequestNotFound when requestID does not exist.
//   - The underlying error when the lookup or the matcher fails.
func (s *DispatchService) Catalog(ctx context.Context, requestID uint, max int) ([]CatalogEntry, error) {
	tr := otel.Tracer("services/DispatchService")
	ctx, span := tr.Start(ctx, "Catalog",
		trace.WithAttributes(attribute.Int("request.id", int(requestID))))
	defer span.End()

	if _, err := repo.GetRequest(ctx, s.DB, requestID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	cands, err := s.Matcher.FindCandidates(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if max <= 0 {
		max = s.DisplayMax
	}
	if max <= 0 {
		max = 20
	}
	if len(cands) > max {
		cands = cands[:max]
	}

	out := make([]CatalogEntry, 0, len(cands))
	for _, c := range cands {
		out = append(out, CatalogEntry{
			Candidate: c,
			Token:     fmt.Sprintf("req_offer:%d:%d", requestID, c.ExecutorID),
		})
	}
	span.SetAttributes(attribute.Int("catalog.entries", len(out)))
	return out, nil
}

// SendDirect delivers one request notice to one executor, the action behind
// a catalog pick. The executor does not have to be a current match: the
// client already chose them, so no category or radius check is repeated
// here. Returns whether the notice went out; an unaddressable executor or a
// refused send reports (false, nil) rather than an error.
//
// Errors:
//   - ErrRequestNotFound / ErrExecutorNotFound when either id is unknown.
//   - The underlying error when a lookup fails.
func (s *DispatchService) SendDirect(ctx context.Context, requestID, executorID uint) (bool, error) {
	tr := otel.Tracer("services/DispatchService")
	ctx, span := tr.Start(ctx, "SendDirect", trace.WithAttributes(
		attribute.Int("request.id", int(requestID)),
		attribute.Int("executor.id", int(executorID)),
	))
	defer span.End()

	req, err := repo.GetRequest(ctx, s.DB, requestID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrRequestNotFound
		}
		return false, err
	}
	ex, err := repo.GetExecutor(ctx, s.DB, executorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrExecutorNotFound
		}
		return false, err
	}

	channel, ok := s.executorChannel(ctx, ex)
	if !ok {
		dispatchDeliveries.WithLabelValues("unaddressed").Inc()
		return false, nil
	}

	var dist *float64
	if ex.HasLocation() {
		d := geo.DistanceKm(req.Lat, req.Lon, *ex.Lat, *ex.Lon)
		dist = &d
	}
	buttons := []notify.Button{{
		Label: "Make an offer",
		Token: fmt.Sprintf("offer:%d:%d", requestID, executorID),
	}}
	if err := s.Sender.Send(ctx, channel, composeRequestNotice(req, dist), buttons); err != nil {
		dispatchDeliveries.WithLabelValues("failed").Inc()
		return false, nil
	}
	dispatchDeliveries.WithLabelValues("delivered").Inc()
	return true, nil
}

// executorChannel resolves where a notice for ex can go: the bound user's
// channel first, the direct channel as fallback.
func (s *DispatchService) executorChannel(ctx context.Context, ex *domain.Executor) (int64, bool) {
	if ex.UserID != nil {
		if u, err := repo.GetUserByID(ctx, s.DB, *ex.UserID); err == nil {
			return u.ChannelID, true
		}
	}
	if ex.DirectChannelID != nil {
		return *ex.DirectChannelID, true
	}
	return 0, false
}

// candidateChannel picks the delivery address already resolved into a
// matched candidate: bound user channel first, direct channel second.
func candidateChannel(c Candidate) (int64, bool) {
	if c.BoundChannelID != nil {
		return *c.BoundChannelID, true
	}
	if c.DirectChannelID != nil {
		return *c.DirectChannelID, true
	}
	return 0, false
}

// composeRequestNotice renders the notice an executor receives about a
// request. A non-nil distanceKm adds an approximate distance line.
func composeRequestNotice(req *domain.Request, distanceKm *float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New request #%d: %s", req.ID, req.Category)
	if req.AddressText != "" {
		fmt.Fprintf(&b, "\nWhere: %s", req.AddressText)
	}
	fmt.Fprintf(&b, "\nMap: %s", MapLink(req.Lat, req.Lon))
	if req.Description != "" {
		fmt.Fprintf(&b, "\nDetails: %s", req.Description)
	}
	if distanceKm != nil {
		fmt.Fprintf(&b, "\nDistance: ~%.1f km", *distanceKm)
	}
	return b.String()
}

// MapLink builds an OpenStreetMap pin link for the given coordinates.
func MapLink(lat, lon float64) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%v&mlon=%v#map=16/%v/%v",
		lat, lon, lat, lon)
}
