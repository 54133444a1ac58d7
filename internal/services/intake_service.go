// Package services – IntakeService
//
// This file implements the IntakeService, the conversational state machine
// that walks an actor through composing a request or an offer one step at a
// time. Progress lives in an ephemeral per-actor draft (see the session
// package): nothing touches the database until the final step, and a cancel
// or restart discards the draft wholesale. Input arriving for a different
// step than the draft is waiting on is rejected with a WrongStateError so
// the caller can re-prompt for the right one.
//
// Request flow: mode (unless given at start) → category → description →
// location, either as coordinates (reverse-geocoded into a label) or as
// address text (forward-geocoded into up to five candidates, picked by
// index) → the request row is written once, fully formed, and dispatched
// per its mode. Actors who have not picked a role yet are parked at the
// role-select step until they do.
//
// Offer flow: bound to a (request, executor) pair at start → rate type →
// rate value → comment → the offer is submitted.
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/geocode"
	"github.com/tbourn/go-broker-backend/internal/redact"
	"github.com/tbourn/go-broker-backend/internal/repo"
	"github.com/tbourn/go-broker-backend/internal/session"
)

// Geocoder is the slice of the geocoding client the intake flow needs.
type Geocoder interface {
	Forward(ctx context.Context, query string) []geocode.Place
	Reverse(ctx context.Context, lat, lon float64) (string, bool)
}

// IntakeService implements the step-by-step request and offer composition.
type IntakeService struct {
	// DB is the database handle used for the final writes.
	DB *gorm.DB

	// Sessions holds the in-progress drafts, keyed by actor channel id.
	Sessions *session.Store

	// Identity resolves actors on flow entry.
	Identity *IdentityService

	// Geocoder turns addresses into coordinates and back.
	Geocoder Geocoder

	// Dispatch delivers a finished request to executors.
	Dispatch *DispatchService

	// Offers submits a finished offer.
	Offers *OfferService

	// Categories is the configured catalog a request category must come
	// from.
	Categories []string
}

// IntakeResult is what a completed request intake returns: the stored
// request plus the dispatch outcome for its mode. Auction mode fills
// Delivered and Matched; catalog mode fills Catalog.
type IntakeResult struct {
	Request   *domain.Request `json:"request"`
	Delivered int             `json:"delivered"`
	Matched   int             `json:"matched"`
	Catalog   []CatalogEntry  `json:"catalog,omitempty"`
}

// StartRequest opens (or restarts) a request draft for the actor. Any
// in-progress draft is discarded.
//
// Semantics:
//   - The actor is resolved first; an actor without a role is parked at the
//     role-select step and the flow resumes with a fresh StartRequest after
//     an explicit role selection.
//   - mode may be given up front ("auction" or "catalog", skipping the
//     mode-select step), left empty, or anything else → ErrInvalidMode.
func (s *IntakeService) StartRequest(ctx context.Context, channelID int64, handle, displayName, mode string) (session.Draft, error) {
	tr := otel.Tracer("services/IntakeService")
	ctx, span := tr.Start(ctx, "StartRequest",
		trace.WithAttributes(attribute.Int64("actor.channel_id", channelID)))
	defer span.End()

	u, err := s.Identity.EnsureUser(ctx, channelID, handle, displayName, "")
	if err != nil {
		return session.Draft{}, err
	}

	var d session.Draft
	switch {
	case u.Role == "":
		d.State = session.StateRoleSelect
	case mode == "":
		d.State = session.StateModeSelect
	case mode == domain.ModeAuction || mode == domain.ModeCatalog:
		d.State = session.StateCategorySelect
		d.Mode = mode
	default:
		return session.Draft{}, ErrInvalidMode
	}
	s.Sessions.Put(channelID, d)
	span.SetAttributes(attribute.String("intake.state", string(d.State)))
	return d, nil
}

// SetMode records the dispatch mode and advances to category selection.
func (s *IntakeService) SetMode(ctx context.Context, channelID int64, mode string) (session.Draft, error) {
	_, span := otel.Tracer("services/IntakeService").Start(ctx, "SetMode")
	defer span.End()

	d, err := s.draftAt(channelID, session.StateModeSelect)
	if err != nil {
		return session.Draft{}, err
	}
	if mode != domain.ModeAuction && mode != domain.ModeCatalog {
		return session.Draft{}, ErrInvalidMode
	}
	d.Mode = mode
	d.State = session.StateCategorySelect
	s.Sessions.Put(channelID, d)
	return d, nil
}

// SetCategory records the request category, validated against the
// configured catalog, and advances to the description step.
func (s *IntakeService) SetCategory(ctx context.Context, channelID int64, category string) (session.Draft, error) {
	_, span := otel.Tracer("services/IntakeService").Start(ctx, "SetCategory")
	defer span.End()

	d, err := s.draftAt(channelID, session.StateCategorySelect)
	if err != nil {
		return session.Draft{}, err
	}
	category = strings.TrimSpace(category)
	if !s.knownCategory(category) {
		return session.Draft{}, ErrUnknownCategory
	}
	d.Category = category
	d.State = session.StateDescriptionInput
	s.Sessions.Put(channelID, d)
	return d, nil
}

// SetDescription records the free-text description, contact-redacted on
// entry, and advances to the location step.
func (s *IntakeService) SetDescription(ctx context.Context, channelID int64, text string) (session.Draft, error) {
	_, span := otel.Tracer("services/IntakeService").Start(ctx, "SetDescription")
	defer span.End()

	d, err := s.draftAt(channelID, session.StateDescriptionInput)
	if err != nil {
		return session.Draft{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return session.Draft{}, ErrEmptyInput
	}
	d.Description = redact.Mask(text)
	d.State = session.StateLocationChoice
	s.Sessions.Put(channelID, d)
	return d, nil
}

// SetLocation takes shared coordinates, labels them by reverse geocoding
// (falling back to the raw coordinates) and finalizes the request.
// Coordinates are accepted at any point of the location phase, including
// while geocode candidates are pending.
func (s *IntakeService) SetLocation(ctx context.Context, channelID int64, lat, lon float64) (*IntakeResult, error) {
	tr := otel.Tracer("services/IntakeService")
	ctx, span := tr.Start(ctx, "SetLocation",
		trace.WithAttributes(attribute.Int64("actor.channel_id", channelID)))
	defer span.End()

	d, err := s.draftAt(channelID,
		session.StateLocationChoice, session.StateAddressInput, session.StateGeocodePick)
	if err != nil {
		return nil, err
	}
	if !validCoords(lat, lon) {
		return nil, ErrInvalidLocation
	}

	label, ok := s.Geocoder.Reverse(ctx, lat, lon)
	if !ok || strings.TrimSpace(label) == "" {
		label = fmt.Sprintf("%.5f, %.5f", lat, lon)
	}
	d.Lat, d.Lon = lat, lon
	d.AddressText = label
	return s.finalize(ctx, channelID, d)
}

// SetAddress forward-geocodes typed address text. With candidates found the
// draft moves to the pick step; with none it stays in the address phase and
// ErrAddressNotFound tells the caller to re-prompt. Typing a new address
// while candidates are pending starts a new search.
func (s *IntakeService) SetAddress(ctx context.Context, channelID int64, text string) (session.Draft, error) {
	tr := otel.Tracer("services/IntakeService")
	ctx, span := tr.Start(ctx, "SetAddress",
		trace.WithAttributes(attribute.Int64("actor.channel_id", channelID)))
	defer span.End()

	d, err := s.draftAt(channelID,
		session.StateLocationChoice, session.StateAddressInput, session.StateGeocodePick)
	if err != nil {
		return session.Draft{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return session.Draft{}, ErrEmptyInput
	}

	places := s.Geocoder.Forward(ctx, text)
	if len(places) == 0 {
		d.Candidates = nil
		d.State = session.StateAddressInput
		s.Sessions.Put(channelID, d)
		return session.Draft{}, ErrAddressNotFound
	}
	d.Candidates = places
	d.State = session.StateGeocodePick
	s.Sessions.Put(channelID, d)
	span.SetAttributes(attribute.Int("geocode.candidates", len(places)))
	return d, nil
}

// PickAddress resolves a pending geocode candidate by index and finalizes
// the request. An out-of-range index yields ErrBadPick and the candidates
// stay pending.
func (s *IntakeService) PickAddress(ctx context.Context, channelID int64, index int) (*IntakeResult, error) {
	tr := otel.Tracer("services/IntakeService")
	ctx, span := tr.Start(ctx, "PickAddress",
		trace.WithAttributes(attribute.Int64("actor.channel_id", channelID)))
	defer span.End()

	d, err := s.draftAt(channelID, session.StateGeocodePick)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(d.Candidates) {
		return nil, ErrBadPick
	}
	p := d.Candidates[index]
	d.Lat, d.Lon = p.Lat, p.Lon
	d.AddressText = p.Label
	return s.finalize(ctx, channelID, d)
}

// StartOffer opens (or restarts) an offer draft bound to a request and an
// executor. Any in-progress draft is discarded.
func (s *IntakeService) StartOffer(ctx context.Context, channelID int64, handle, displayName string, requestID, executorID uint) (session.Draft, error) {
	tr := otel.Tracer("services/IntakeService")
	ctx, span := tr.Start(ctx, "StartOffer", trace.WithAttributes(
		attribute.Int64("actor.channel_id", channelID),
		attribute.Int("request.id", int(requestID)),
		attribute.Int("executor.id", int(executorID)),
	))
	defer span.End()

	if _, err := s.Identity.EnsureUser(ctx, channelID, handle, displayName, ""); err != nil {
		return session.Draft{}, err
	}
	if _, err := repo.GetRequest(ctx, s.DB, requestID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return session.Draft{}, ErrRequestNotFound
		}
		return session.Draft{}, err
	}
	if _, err := repo.GetExecutor(ctx, s.DB, executorID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return session.Draft{}, ErrExecutorNotFound
		}
		return session.Draft{}, err
	}

	d := session.Draft{
		State:      session.StateRateType,
		RequestID:  requestID,
		ExecutorID: executorID,
	}
	s.Sessions.Put(channelID, d)
	return d, nil
}

// SetRateType records the pricing basis and advances to the value step.
func (s *IntakeService) SetRateType(ctx context.Context, channelID int64, rateType string) (session.Draft, error) {
	_, span := otel.Tracer("services/IntakeService").Start(ctx, "SetRateType")
	defer span.End()

	d, err := s.draftAt(channelID, session.StateRateType)
	if err != nil {
		return session.Draft{}, err
	}
	switch rateType {
	case domain.RateHour, domain.RateShift, domain.RateObject:
	default:
		return session.Draft{}, ErrInvalidRateType
	}
	d.RateType = rateType
	d.State = session.StateRateValue
	s.Sessions.Put(channelID, d)
	return d, nil
}

// SetRateValue parses the typed rate and advances to the comment step. A
// decimal comma is accepted ("1200,50"); anything that does not parse to a
// positive number yields ErrInvalidRate and the step stays put.
func (s *IntakeService) SetRateValue(ctx context.Context, channelID int64, raw string) (session.Draft, error) {
	_, span := otel.Tracer("services/IntakeService").Start(ctx, "SetRateValue")
	defer span.End()

	d, err := s.draftAt(channelID, session.StateRateValue)
	if err != nil {
		return session.Draft{}, err
	}
	v, err := parseRate(raw)
	if err != nil {
		return session.Draft{}, err
	}
	d.RateValue = v
	d.State = session.StateComment
	s.Sessions.Put(channelID, d)
	return d, nil
}

// SetComment takes the final free-text comment (empty means skipped) and
// submits the offer. The draft is discarded once the offer is stored.
func (s *IntakeService) SetComment(ctx context.Context, channelID int64, comment string) (*domain.Offer, error) {
	tr := otel.Tracer("services/IntakeService")
	ctx, span := tr.Start(ctx, "SetComment",
		trace.WithAttributes(attribute.Int64("actor.channel_id", channelID)))
	defer span.End()

	d, err := s.draftAt(channelID, session.StateComment)
	if err != nil {
		return nil, err
	}
	o, err := s.Offers.Submit(ctx, d.RequestID, d.ExecutorID, d.RateType, d.RateValue, comment)
	if err != nil {
		return nil, err
	}
	s.Sessions.Delete(channelID)
	span.SetAttributes(attribute.Int("offer.id", int(o.ID)))
	return o, nil
}

// Cancel discards the actor's in-progress draft, if any.
func (s *IntakeService) Cancel(channelID int64) {
	s.Sessions.Delete(channelID)
}

// finalize writes the request row and dispatches it per its mode. The draft
// is discarded as soon as the row is stored; dispatch failures surface to
// the caller but can no longer leave a stuck conversation behind.
func (s *IntakeService) finalize(ctx context.Context, channelID int64, d session.Draft) (*IntakeResult, error) {
	u, err := repo.GetUserByChannel(ctx, s.DB, channelID)
	if err != nil {
		return nil, err
	}

	req := &domain.Request{
		ClientUserID: u.ID,
		Category:     d.Category,
		Description:  d.Description,
		AddressText:  d.AddressText,
		Lat:          d.Lat,
		Lon:          d.Lon,
		Mode:         d.Mode,
		Status:       domain.StatusPublished,
	}
	if err := repo.CreateRequest(ctx, s.DB, req); err != nil {
		return nil, err
	}
	s.Sessions.Delete(channelID)

	res := &IntakeResult{Request: req}
	switch d.Mode {
	case domain.ModeAuction:
		delivered, total, err := s.Dispatch.Broadcast(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		res.Delivered, res.Matched = delivered, total
	case domain.ModeCatalog:
		entries, err := s.Dispatch.Catalog(ctx, req.ID, 0)
		if err != nil {
			return nil, err
		}
		res.Catalog = entries
	}
	return res, nil
}

// draftAt loads the actor's draft and checks it is waiting on one of the
// given states. No draft yields ErrNoIntake; a draft parked elsewhere
// yields a WrongStateError naming where it actually is.
func (s *IntakeService) draftAt(channelID int64, states ...session.State) (session.Draft, error) {
	d, ok := s.Sessions.Get(channelID)
	if !ok {
		return session.Draft{}, ErrNoIntake
	}
	for _, st := range states {
		if d.State == st {
			return d, nil
		}
	}
	return session.Draft{}, &WrongStateError{Current: string(d.State)}
}

// knownCategory reports whether tag is in the configured catalog.
func (s *IntakeService) knownCategory(tag string) bool {
	for _, c := range s.Categories {
		if c == tag {
			return true
		}
	}
	return false
}

// parseRate parses a typed rate value. A decimal comma is accepted as the
// separator; the result must be a positive finite number.
func parseRate(raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidRate
	}
	return v, nil
}
