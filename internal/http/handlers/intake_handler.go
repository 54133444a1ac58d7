// Intake HTTP handlers.
//
// This file exposes the step endpoints of the two guided conversations:
//
// Request intake:
//   - POST   /intake/requests              (start, optional mode)
//   - POST   /intake/requests/mode
//   - POST   /intake/requests/category
//   - POST   /intake/requests/description
//   - POST   /intake/requests/location     (coordinates → finalize)
//   - POST   /intake/requests/address      (forward geocode)
//   - POST   /intake/requests/geocode      (pick a candidate → finalize)
//   - DELETE /intake/requests              (cancel)
//
// Offer intake:
//   - POST   /intake/offers                (start, request + executor ids)
//   - POST   /intake/offers/rate-type
//   - POST   /intake/offers/rate-value
//   - POST   /intake/offers/comment        (submit)
//   - DELETE /intake/offers
//
// Each step either advances the conversation (200 with the step now waited
// on), finalizes it (201 with the created resource), or rejects the input.
// Out-of-step input is a conflict, not a validation error: the draft stays
// where it was and the response names the step to re-prompt for.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/services"
	"github.com/tbourn/go-broker-backend/internal/session"
)

//
// Service contract (context-aware)
//

// IntakeService drives the request and offer conversations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type IntakeService interface {
	StartRequest(ctx context.Context, channelID int64, handle, displayName, mode string) (session.Draft, error)
	SetMode(ctx context.Context, channelID int64, mode string) (session.Draft, error)
	SetCategory(ctx context.Context, channelID int64, category string) (session.Draft, error)
	SetDescription(ctx context.Context, channelID int64, text string) (session.Draft, error)
	SetLocation(ctx context.Context, channelID int64, lat, lon float64) (*services.IntakeResult, error)
	SetAddress(ctx context.Context, channelID int64, text string) (session.Draft, error)
	PickAddress(ctx context.Context, channelID int64, index int) (*services.IntakeResult, error)

	StartOffer(ctx context.Context, channelID int64, handle, displayName string, requestID, executorID uint) (session.Draft, error)
	SetRateType(ctx context.Context, channelID int64, rateType string) (session.Draft, error)
	SetRateValue(ctx context.Context, channelID int64, raw string) (session.Draft, error)
	SetComment(ctx context.Context, channelID int64, comment string) (*domain.Offer, error)

	Cancel(channelID int64)
}

//
// DTOs
//

// StartRequestIntakeRequest is the JSON payload for opening a request draft.
type StartRequestIntakeRequest struct {
	// Mode optionally fixes the dispatch mode up front ("auction" or
	// "catalog"), skipping the mode step.
	Mode string `json:"mode" example:"auction"`
}

// SetIntakeModeRequest is the JSON payload for the mode step.
type SetIntakeModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=auction catalog" example:"auction"`
}

// SetIntakeCategoryRequest is the JSON payload for the category step.
type SetIntakeCategoryRequest struct {
	Category string `json:"category" binding:"required,min=1" example:"Excavator"`
}

// SetIntakeDescriptionRequest is the JSON payload for the description step.
type SetIntakeDescriptionRequest struct {
	Description string `json:"description" binding:"required,min=1" example:"Dig a 3m pit behind the warehouse"`
}

// SetIntakeLocationRequest is the JSON payload for the coordinate step.
// Pointers keep zero coordinates (equator, prime meridian) bindable.
type SetIntakeLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required" example:"55.751"`
	Lon *float64 `json:"lon" binding:"required" example:"37.618"`
}

// SetIntakeAddressRequest is the JSON payload for the address step.
type SetIntakeAddressRequest struct {
	Address string `json:"address" binding:"required,min=1" example:"Tverskaya 7, Moscow"`
}

// PickIntakeAddressRequest is the JSON payload selecting a geocode candidate.
// A pointer keeps index 0 (the first candidate) bindable.
type PickIntakeAddressRequest struct {
	Index *int `json:"index" binding:"required" example:"0"`
}

// StartOfferIntakeRequest is the JSON payload for opening an offer draft.
type StartOfferIntakeRequest struct {
	RequestID  uint `json:"request_id" binding:"required" example:"7"`
	ExecutorID uint `json:"executor_id" binding:"required" example:"3"`
}

// SetOfferRateTypeRequest is the JSON payload for the rate unit step.
type SetOfferRateTypeRequest struct {
	RateType string `json:"rate_type" binding:"required,oneof=hour shift object" example:"hour"`
}

// SetOfferRateValueRequest is the JSON payload for the rate amount step.
// The value is raw text: a decimal comma is accepted ("1200,50").
type SetOfferRateValueRequest struct {
	RateValue string `json:"rate_value" binding:"required" example:"2500"`
}

// SetOfferCommentRequest is the JSON payload for the final comment step.
// An empty comment is allowed and submits the offer without one.
type SetOfferCommentRequest struct {
	Comment string `json:"comment" example:"Fuel included, available from Monday"`
}

// IntakeStateResponse reports the step a conversation is waiting on.
// Addresses is populated at the geocode-pick step with the candidate labels
// to choose from.
type IntakeStateResponse struct {
	State     string   `json:"state" example:"category-select"`
	Addresses []string `json:"addresses,omitempty"`
}

//
// Helpers
//

// intakeState projects a draft onto the transport view.
func intakeState(d session.Draft) IntakeStateResponse {
	resp := IntakeStateResponse{State: string(d.State)}
	for _, p := range d.Candidates {
		resp.Addresses = append(resp.Addresses, p.Label)
	}
	return resp
}

// failIntake translates intake service errors into HTTP responses. Every
// step endpoint shares the same taxonomy, so the mapping lives in one place.
func failIntake(c *gin.Context, err error) {
	var ws *services.WrongStateError
	switch {
	case errors.As(err, &ws):
		fail(c, http.StatusConflict, ErrCodeConflict, "conversation is waiting on step "+ws.Current)
	case errors.Is(err, services.ErrNoIntake):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "no conversation in progress")
	case errors.Is(err, services.ErrInvalidMode):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "mode must be auction or catalog")
	case errors.Is(err, services.ErrUnknownCategory):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category is not in the catalog")
	case errors.Is(err, services.ErrEmptyInput):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "input must not be empty")
	case errors.Is(err, services.ErrInvalidLocation):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "coordinates out of range")
	case errors.Is(err, services.ErrAddressNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "address not found; try a different one")
	case errors.Is(err, services.ErrBadPick):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "index does not match a candidate")
	case errors.Is(err, services.ErrInvalidRateType):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rate type must be hour, shift or object")
	case errors.Is(err, services.ErrInvalidRate):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rate must be a positive number")
	case errors.Is(err, services.ErrRequestNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "request not found")
	case errors.Is(err, services.ErrExecutorNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "executor not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Request intake handlers
//

// StartRequestIntake godoc
// @ID          startRequestIntake
// @Summary     Start a request conversation
// @Description Opens (or restarts) the guided request intake for the calling actor.
// @Description An actor that has not yet chosen a role is parked at the role-select
// @Description step; select a role and start again.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID      header  string  true  "Actor channel id"  example(424242)
// @Param       X-Actor-Handle  header  string  false "Actor handle"
// @Param       X-Actor-Name    header  string  false "Actor display name"
// @Param       body            body    handlers.StartRequestIntakeRequest  false  "Optional up-front mode"
//
// @Success     200  {object}  handlers.IntakeStateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /intake/requests [post]
func (h *Handlers) StartRequestIntake(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req StartRequestIntakeRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
			return
		}
	}

	d, err := h.intakeSvc.StartRequest(c.Request.Context(), actor, actorHandle(c), actorName(c), strings.TrimSpace(req.Mode))
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusOK, intakeState(d))
}

// SetIntakeMode godoc
// @ID          setIntakeMode
// @Summary     Choose the dispatch mode
// @Description Records whether the request is broadcast to matching executors
// @Description ("auction") or browsed as a ranked catalog ("catalog").
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       body        body    handlers.SetIntakeModeRequest  true  "Dispatch mode"
//
// @Success     200  {object}  handlers.IntakeStateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid mode"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation in progress"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Router      /intake/requests/mode [post]
func (h *Handlers) SetIntakeMode(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req SetIntakeModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "mode must be auction or catalog")
		return
	}
	d, err := h.intakeSvc.SetMode(c.Request.Context(), actor, req.Mode)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusOK, intakeState(d))
}

// SetIntakeCategory godoc
// @ID          setIntakeCategory
// @Summary     Choose the equipment category
// @Description Records the request category, validated against the configured catalog.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       body        body    handlers.SetIntakeCategoryRequest  true  "Category"
//
// @Success     200  {object}  handlers.IntakeStateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown category"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation in progress"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Router      /intake/requests/category [post]
func (h *Handlers) SetIntakeCategory(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req SetIntakeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category required")
		return
	}
	d, err := h.intakeSvc.SetCategory(c.Request.Context(), actor, req.Category)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusOK, intakeState(d))
}

// SetIntakeDescription godoc
// @ID          setIntakeDescription
// @Summary     Describe the job
// @Description Records the free-text description. Contact details (phone numbers,
// @Description handles, links) are redacted before anything is stored or shown.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       body        body    handlers.SetIntakeDescriptionRequest  true  "Job description"
//
// @Success     200  {object}  handlers.IntakeStateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Empty description"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation in progress"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Router      /intake/requests/description [post]
func (h *Handlers) SetIntakeDescription(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req SetIntakeDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "description required")
		return
	}
	d, err := h.intakeSvc.SetDescription(c.Request.Context(), actor, req.Description)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusOK, intakeState(d))
}

// SetIntakeLocation godoc
// @ID          setIntakeLocation
// @Summary     Pin the job location
// @Description Accepts raw coordinates, reverse-geocodes a display label, publishes
// @Description the request, and dispatches it per the chosen mode. Auction mode
// @Description reports how many executors were notified; catalog mode returns the
// @Description ranked candidate list instead.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       body        body    handlers.SetIntakeLocationRequest  true  "Coordinates"
//
// @Success     201  {object}  services.IntakeResult  "Request published"
// @Failure     400  {object}  handlers.ErrorResponse  "Coordinates out of range"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation in progress"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /intake/requests/location [post]
func (h *Handlers) SetIntakeLocation(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req SetIntakeLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "lat and lon required")
		return
	}
	res, err := h.intakeSvc.SetLocation(c.Request.Context(), actor, *req.Lat, *req.Lon)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusCreated, res)
}

// SetIntakeAddress godoc
// @ID          setIntakeAddress
// @Summary     Locate the job by address
// @Description Forward-geocodes the address text. When candidates are found the
// @Description conversation advances to the pick step; when none are, it stays in
// @Description the address step so a different wording can be tried.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       body        body    handlers.SetIntakeAddressRequest  true  "Address text"
//
// @Success     200  {object}  handlers.IntakeStateResponse  "Candidates to pick from"
// @Failure     400  {object}  handlers.ErrorResponse  "Empty address"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation, or address not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Router      /intake/requests/address [post]
func (h *Handlers) SetIntakeAddress(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req SetIntakeAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "address required")
		return
	}
	d, err := h.intakeSvc.SetAddress(c.Request.Context(), actor, req.Address)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusOK, intakeState(d))
}

// PickIntakeAddress godoc
// @ID          pickIntakeAddress
// @Summary     Pick a geocoded candidate
// @Description Selects one of the candidates returned by the address step, publishes
// @Description the request with its coordinates, and dispatches it per the chosen mode.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       body        body    handlers.PickIntakeAddressRequest  true  "Candidate index"
//
// @Success     201  {object}  services.IntakeResult  "Request published"
// @Failure     400  {object}  handlers.ErrorResponse  "Index out of range"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation in progress"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /intake/requests/geocode [post]
func (h *Handlers) PickIntakeAddress(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req PickIntakeAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "index required")
		return
	}
	res, err := h.intakeSvc.PickAddress(c.Request.Context(), actor, *req.Index)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusCreated, res)
}

// CancelRequestIntake godoc
// @ID          cancelRequestIntake
// @Summary     Cancel the request conversation
// @Description Discards the in-progress request draft, if any. Always succeeds.
// @Tags        Intake
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Router      /intake/requests [delete]
func (h *Handlers) CancelRequestIntake(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	h.intakeSvc.Cancel(actor)
	noContent(c)
}

//
// Offer intake handlers
//

// StartOfferIntake godoc
// @ID          startOfferIntake
// @Summary     Start an offer conversation
// @Description Opens an offer draft for the calling actor against a request, acting
// @Description as the given executor. Both ids usually come from a dispatch token.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID      header  string  true  "Actor channel id"  example(99887)
// @Param       X-Actor-Handle  header  string  false "Actor handle"
// @Param       body            body    handlers.StartOfferIntakeRequest  true  "Target request and executor"
//
// @Success     200  {object}  handlers.IntakeStateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     404  {object}  handlers.ErrorResponse  "Request or executor not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /intake/offers [post]
func (h *Handlers) StartOfferIntake(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req StartOfferIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request_id and executor_id required")
		return
	}
	d, err := h.intakeSvc.StartOffer(c.Request.Context(), actor, actorHandle(c), actorName(c), req.RequestID, req.ExecutorID)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusOK, intakeState(d))
}

// SetOfferRateType godoc
// @ID          setOfferRateType
// @Summary     Choose the rate unit
// @Description Records how the offered rate is billed: per hour, per shift, or per
// @Description whole object.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(99887)
// @Param       body        body    handlers.SetOfferRateTypeRequest  true  "Rate unit"
//
// @Success     200  {object}  handlers.IntakeStateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid rate unit"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation in progress"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Router      /intake/offers/rate-type [post]
func (h *Handlers) SetOfferRateType(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req SetOfferRateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rate_type must be hour, shift or object")
		return
	}
	d, err := h.intakeSvc.SetRateType(c.Request.Context(), actor, req.RateType)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusOK, intakeState(d))
}

// SetOfferRateValue godoc
// @ID          setOfferRateValue
// @Summary     State the rate amount
// @Description Records the offered amount. The value is plain text; a decimal comma
// @Description is accepted. On invalid input the conversation stays at this step.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(99887)
// @Param       body        body    handlers.SetOfferRateValueRequest  true  "Rate amount"
//
// @Success     200  {object}  handlers.IntakeStateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Not a positive number"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation in progress"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Router      /intake/offers/rate-value [post]
func (h *Handlers) SetOfferRateValue(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req SetOfferRateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rate_value required")
		return
	}
	d, err := h.intakeSvc.SetRateValue(c.Request.Context(), actor, req.RateValue)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusOK, intakeState(d))
}

// SetOfferComment godoc
// @ID          setOfferComment
// @Summary     Comment and submit the offer
// @Description Records the optional comment and submits the offer. Contact details in
// @Description the comment are redacted; the client is notified under the executor's
// @Description anonymized label with an accept action.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(99887)
// @Param       body        body    handlers.SetOfferCommentRequest  true  "Comment (may be empty)"
//
// @Success     201  {object}  domain.Offer  "Offer submitted"
// @Failure     404  {object}  handlers.ErrorResponse  "No conversation in progress"
// @Failure     409  {object}  handlers.ErrorResponse  "Waiting on a different step"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /intake/offers/comment [post]
func (h *Handlers) SetOfferComment(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	var req SetOfferCommentRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
			return
		}
	}
	o, err := h.intakeSvc.SetComment(c.Request.Context(), actor, req.Comment)
	if err != nil {
		failIntake(c, err)
		return
	}
	ok(c, http.StatusCreated, o)
}

// CancelOfferIntake godoc
// @ID          cancelOfferIntake
// @Summary     Cancel the offer conversation
// @Description Discards the in-progress offer draft, if any. Always succeeds.
// @Tags        Intake
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(99887)
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Router      /intake/offers [delete]
func (h *Handlers) CancelOfferIntake(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}
	h.intakeSvc.Cancel(actor)
	noContent(c)
}
