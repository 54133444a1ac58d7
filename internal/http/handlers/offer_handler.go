// Offer HTTP handlers.
//
// This file exposes the REST endpoint for accepting an offer:
//   - POST /offers/{id}/accept
//
// Acceptance is the marketplace's commit point: it atomically marks the offer
// accepted, opens the deal, and releases the contacts both sides were hidden
// behind. The handler adds idempotency on top:
//
// If the client supplies an Idempotency-Key header and a previous successful
// accept exists for (actor, offer, key), the handler returns the recorded
// outcome and sets `Idempotency-Replayed: true` instead of conflicting.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-broker-backend/internal/repo"
	"github.com/tbourn/go-broker-backend/internal/services"
)

// OfferService defines offer acceptance operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type OfferService interface {
	// Accept marks an offer accepted, opens the deal, and releases contacts.
	Accept(ctx context.Context, offerID uint) (*services.AcceptResult, error)
	// AcceptedResult rebuilds the outcome of an accept that already
	// happened, for idempotent replays.
	AcceptedResult(ctx context.Context, offerID uint) (*services.AcceptResult, error)
}

// AcceptOffer godoc
// @ID          acceptOffer
// @Summary     Accept an offer
// @Description Marks the offer accepted, opens the deal, and releases the contacts of
// @Description both sides. Accepting twice is a conflict unless the same
// @Description Idempotency-Key is replayed, in which case the recorded outcome is
// @Description returned unchanged.
// @Tags        Offers
// @Produce     json
//
// @Param       X-Actor-ID       header  string  true  "Actor channel id"  example(424242)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       id               path    int     true  "Offer ID"          example(12)
//
// @Success     200  {object}  services.AcceptResult
// @Failure     400  {object}  handlers.ErrorResponse  "Bad id"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     404  {object}  handlers.ErrorResponse  "Offer not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Offer already accepted"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /offers/{id}/accept [post]
func (h *Handlers) AcceptOffer(c *gin.Context) {
	ctx := c.Request.Context()
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	offerID, okID := pathID(c, "id")
	if !okID {
		return
	}
	scope := "accept-offer:" + c.Param("id")

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := requestIdempotencyKey(c)
	if idemKey != "" {
		if svc, okSvc := h.offerSvc.(*services.OfferService); okSvc && svc.DB != nil {
			if rec, err := repo.GetIdempotency(ctx, svc.DB, actor, scope, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if res, err2 := svc.AcceptedResult(ctx, offerID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, res)
					return
				}
			}
		}
	}

	res, err := h.offerSvc.Accept(ctx, offerID)
	if err != nil {
		switch err {
		case services.ErrOfferNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "offer not found")
		case services.ErrOfferAlreadyAccepted:
			fail(c, http.StatusConflict, ErrCodeConflict, "offer already accepted")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeAcceptFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if svc, okSvc := h.offerSvc.(*services.OfferService); okSvc && svc.DB != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, svc.DB, actor, scope, idemKey, res.DealID, http.StatusOK, ttl)
		}
	}

	ok(c, http.StatusOK, res)
}

// requestIdempotencyKey extracts an idempotency key if an upstream middleware
// has already validated/stashed it. The fallback behavior reads the
// "Idempotency-Key" header directly when no dedicated middleware exists.
func requestIdempotencyKey(c *gin.Context) (string, bool) {
	if v := strings.TrimSpace(c.GetHeader("Idempotency-Key")); v != "" {
		return v, true
	}
	return "", false
}
