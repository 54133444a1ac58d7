// Package services – OfferService
//
// This file implements the OfferService, which governs the offer side of
// the marketplace: executors submit priced proposals against a request, the
// client accepts one, and acceptance releases the contact details both
// sides were shielded from until then. Submission validates the rate and
// redacts contact data out of the comment; acceptance is transactional so a
// racing double accept can never produce two deals for one offer.
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
	"github.com/tbourn/go-broker-backend/internal/notify"
	"github.com/tbourn/go-broker-backend/internal/redact"
	"github.com/tbourn/go-broker-backend/internal/repo"
)

// OfferService implements the use-cases around offers and their acceptance.
type OfferService struct {
	// DB is the database handle used for all offer operations.
	DB *gorm.DB

	// Sender delivers the courtesy notices around submission and
	// acceptance. Notices are best effort and never fail the operation.
	Sender notify.Sender
}

// AcceptResult reports a completed acceptance: the deal that was opened and
// the executor contact the client is now allowed to see. Contact is empty
// when the executor cannot be addressed yet; it becomes resolvable once the
// person behind the executor record contacts the system.
type AcceptResult struct {
	DealID        uint   `json:"deal_id"`
	OfferID       uint   `json:"offer_id"`
	RequestID     uint   `json:"request_id"`
	ExecutorLabel string `json:"executor_label"`
	Contact       string `json:"contact,omitempty"`
}

// Submit records an offer by executorID against requestID.
//
// Semantics and validation:
//   - rateType must be "hour", "shift" or "object"; otherwise ErrInvalidRateType.
//   - rateValue must be positive; otherwise ErrInvalidRate.
//   - Both the request and the executor must exist.
//   - The comment is contact-redacted before it is stored; the client sees
//     the executor only as an anonymized label until acceptance.
//   - Repeat offers by the same executor on the same request are allowed.
//
// After the insert the client is notified with the offer summary and an
// accept button. The notice is best effort; its failure is not reported.
func (s *OfferService) Submit(ctx context.Context, requestID, executorID uint, rateType string, rateValue float64, comment string) (*domain.Offer, error) {
	tr := otel.Tracer("services/OfferService")
	ctx, span := tr.Start(ctx, "Submit", trace.WithAttributes(
		attribute.Int("request.id", int(requestID)),
		attribute.Int("executor.id", int(executorID)),
	))
	defer span.End()

	switch rateType {
	case domain.RateHour, domain.RateShift, domain.RateObject:
	default:
		return nil, ErrInvalidRateType
	}
	if rateValue <= 0 {
		return nil, ErrInvalidRate
	}

	req, err := repo.GetRequest(ctx, s.DB, requestID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	ex, err := repo.GetExecutor(ctx, s.DB, executorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExecutorNotFound
		}
		return nil, err
	}

	o := &domain.Offer{
		RequestID:  requestID,
		ExecutorID: executorID,
		RateType:   rateType,
		RateValue:  rateValue,
		Comment:    redact.Mask(strings.TrimSpace(comment)),
	}
	if err := repo.CreateOffer(ctx, s.DB, o); err != nil {
		return nil, err
	}
	offersSubmitted.Inc()
	span.SetAttributes(attribute.Int("offer.id", int(o.ID)))

	s.notifyClientNewOffer(ctx, req, o, ex.Label())
	return o, nil
}

// Accept closes the deal on offerID: the offer flips to accepted, a deal
// row is opened and the contact gate is released, all in one transaction.
//
// Semantics:
//   - An unknown offer yields ErrOfferNotFound.
//   - An already accepted offer yields ErrOfferAlreadyAccepted, whether the
//     earlier accept was observed up front or lost to a concurrent caller.
//     The unique index on deals.offer_id is what settles the race.
//   - The result carries the executor's contact resolved for the client:
//     the bound user's handle, else a direct mention link, else empty.
//
// After commit the executor is notified that the offer was accepted,
// including the client's contact. The notice is best effort.
func (s *OfferService) Accept(ctx context.Context, offerID uint) (*AcceptResult, error) {
	tr := otel.Tracer("services/OfferService")
	ctx, span := tr.Start(ctx, "Accept",
		trace.WithAttributes(attribute.Int("offer.id", int(offerID))))
	defer span.End()

	row, err := repo.GetOfferAcceptance(ctx, s.DB, offerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	if row.Status == domain.OfferAccepted {
		return nil, ErrOfferAlreadyAccepted
	}

	var deal *domain.Deal
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateOfferStatus(ctx, tx, offerID, domain.OfferAccepted); err != nil {
			return err
		}
		d, err := repo.CreateDeal(ctx, tx, row.RequestID, offerID)
		if err != nil {
			// A second deal for the same offer violates the unique
			// index: somebody else accepted between our status check
			// and this insert.
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrOfferAlreadyAccepted
			}
			return err
		}
		if err := repo.ReleaseDealContacts(ctx, tx, d.ID); err != nil {
			return err
		}
		d.ContactsReleased = true
		deal = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	dealsClosed.Inc()
	span.SetAttributes(attribute.Int("deal.id", int(deal.ID)))

	res := &AcceptResult{
		DealID:        deal.ID,
		OfferID:       row.OfferID,
		RequestID:     row.RequestID,
		ExecutorLabel: domain.Executor{ID: row.ExecutorID}.Label(),
		Contact:       s.executorContact(ctx, row),
	}
	s.notifyExecutorAccepted(ctx, row)
	return res, nil
}

// AcceptedResult rebuilds the acceptance outcome for an offer whose deal
// already exists. It backs idempotent replays of Accept: same payload, no
// second state change, no second notice.
func (s *OfferService) AcceptedResult(ctx context.Context, offerID uint) (*AcceptResult, error) {
	tr := otel.Tracer("services/OfferService")
	ctx, span := tr.Start(ctx, "AcceptedResult",
		trace.WithAttributes(attribute.Int("offer.id", int(offerID))))
	defer span.End()

	row, err := repo.GetOfferAcceptance(ctx, s.DB, offerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	deal, err := repo.GetDealByOffer(ctx, s.DB, offerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &AcceptResult{
		DealID:        deal.ID,
		OfferID:       row.OfferID,
		RequestID:     row.RequestID,
		ExecutorLabel: domain.Executor{ID: row.ExecutorID}.Label(),
		Contact:       s.executorContact(ctx, row),
	}, nil
}

// executorContact resolves what the client may now see: the bound user's
// handle, else a direct mention link, else empty.
func (s *OfferService) executorContact(ctx context.Context, row *repo.OfferAcceptance) string {
	if row.ExecutorUserID != nil {
		if u, err := repo.GetUserByID(ctx, s.DB, *row.ExecutorUserID); err == nil && u.Handle != "" {
			return "@" + u.Handle
		}
	}
	if row.DirectChannelID != nil {
		return fmt.Sprintf("tg://user?id=%d", *row.DirectChannelID)
	}
	return ""
}

// notifyClientNewOffer shows the client the new offer under the executor's
// anonymized label. Failures are swallowed: the offer is already stored.
func (s *OfferService) notifyClientNewOffer(ctx context.Context, req *domain.Request, o *domain.Offer, label string) {
	u, err := repo.GetUserByID(ctx, s.DB, req.ClientUserID)
	if err != nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "New offer on request #%d", req.ID)
	fmt.Fprintf(&b, "\nFrom: %s", label)
	fmt.Fprintf(&b, "\nRate: %v per %s", o.RateValue, o.RateType)
	if o.Comment != "" {
		fmt.Fprintf(&b, "\nComment: %s", o.Comment)
	}
	buttons := []notify.Button{{
		Label: "Accept",
		Token: fmt.Sprintf("accept_offer:%d", o.ID),
	}}
	_ = s.Sender.Send(ctx, u.ChannelID, b.String(), buttons)
}

// notifyExecutorAccepted tells the executor the deal is on and passes the
// client's contact. Failures are swallowed: the acceptance has committed.
func (s *OfferService) notifyExecutorAccepted(ctx context.Context, row *repo.OfferAcceptance) {
	channel, ok := s.executorChannel(ctx, row)
	if !ok {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Your offer on request #%d was accepted.", row.RequestID)
	if contact := s.clientContact(ctx, row.RequestID); contact != "" {
		fmt.Fprintf(&b, "\nClient: %s", contact)
	}
	_ = s.Sender.Send(ctx, channel, b.String(), nil)
}

// executorChannel resolves the channel the acceptance notice goes to:
// bound user channel first, direct channel second.
func (s *OfferService) executorChannel(ctx context.Context, row *repo.OfferAcceptance) (int64, bool) {
	if row.ExecutorUserID != nil {
		if u, err := repo.GetUserByID(ctx, s.DB, *row.ExecutorUserID); err == nil {
			return u.ChannelID, true
		}
	}
	if row.DirectChannelID != nil {
		return *row.DirectChannelID, true
	}
	return 0, false
}

// clientContact renders the request owner's contact for the executor's
// acceptance notice. Clients always have a channel, so this only comes up
// empty when a lookup fails.
func (s *OfferService) clientContact(ctx context.Context, requestID uint) string {
	req, err := repo.GetRequest(ctx, s.DB, requestID)
	if err != nil {
		return ""
	}
	u, err := repo.GetUserByID(ctx, s.DB, req.ClientUserID)
	if err != nil {
		return ""
	}
	if u.Handle != "" {
		return "@" + u.Handle
	}
	return fmt.Sprintf("tg://user?id=%d", u.ChannelID)
}

// isDuplicate attempts to detect unique-constraint violations across
// drivers that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
