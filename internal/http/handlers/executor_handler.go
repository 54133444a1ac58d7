// Executor administration HTTP handlers.
//
// This file exposes the admin-only REST endpoints for the executor roster:
//   - POST /admin/executors                 (register)
//   - GET  /admin/executors                 (list with addressing state)
//   - PUT  /admin/executors/{id}/location   (set base coordinates)
//   - PUT  /admin/executors/{id}/active     (activate/deactivate)
//
// The admin gate itself is middleware; handlers here assume the caller was
// already admitted.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/repo"
	"github.com/tbourn/go-broker-backend/internal/services"
)

// ExecutorService defines roster administration operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ExecutorService interface {
	// Register creates an executor addressed by handle or by channel id.
	Register(ctx context.Context, handle string, channelID *int64, categories []string, city string, radiusKm float64, isOwner bool) (*domain.Executor, error)
	// List returns the roster with each executor's resolved addressing.
	List(ctx context.Context) ([]repo.ExecutorAccount, error)
	// SetLocation stores an executor's base coordinates.
	SetLocation(ctx context.Context, id uint, lat, lon float64) error
	// SetActive toggles whether an executor is matchable.
	SetActive(ctx context.Context, id uint, active bool) error
}

//
// DTOs
//

// RegisterExecutorRequest is the JSON payload for registering an executor.
// Exactly one addressing path must be given: a handle (linked when that
// person first contacts the system) or a channel id (addressable at once).
type RegisterExecutorRequest struct {
	// Handle is the messenger handle, with or without a leading "@".
	Handle string `json:"handle" example:"bigdig"`
	// ChannelID addresses the executor directly by chat channel.
	ChannelID *int64 `json:"channel_id" example:"99887"`
	// Categories lists the equipment the executor covers.
	Categories []string `json:"categories" binding:"required,min=1" example:"Excavator,Loader"`
	// City is a display label, normalized to title case.
	City string `json:"city" example:"nizhny novgorod"`
	// RadiusKm is the service radius; the configured default applies when
	// omitted or non-positive.
	RadiusKm float64 `json:"radius_km" example:"50"`
	// IsOwner marks equipment owners, ranked above subcontractors.
	IsOwner bool `json:"is_owner" example:"true"`
}

// ListExecutorsResponse wraps the executor roster.
type ListExecutorsResponse struct {
	Executors []repo.ExecutorAccount `json:"executors"`
}

// UpdateExecutorLocationRequest is the JSON payload for setting coordinates.
// Pointers keep zero coordinates bindable.
type UpdateExecutorLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required" example:"56.326"`
	Lon *float64 `json:"lon" binding:"required" example:"44.007"`
}

// UpdateExecutorActiveRequest is the JSON payload for the activity toggle.
// A pointer keeps `false` bindable.
type UpdateExecutorActiveRequest struct {
	Active *bool `json:"active" binding:"required" example:"false"`
}

//
// Handlers
//

// RegisterExecutor godoc
// @ID          registerExecutor
// @Summary     Register an executor
// @Description Adds an executor to the roster, addressed either by messenger handle
// @Description (linked when that person first contacts the system) or by channel id.
// @Description Exactly one of the two must be given.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Admin channel id"  example(111)
// @Param       body        body    handlers.RegisterExecutorRequest  true  "Executor registration"
//
// @Success     201  {object}  domain.Executor
// @Failure     400  {object}  handlers.ErrorResponse  "Bad addressing or categories"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin only"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/executors [post]
func (h *Handlers) RegisterExecutor(c *gin.Context) {
	var req RegisterExecutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "categories required")
		return
	}

	ex, err := h.executorSvc.Register(c.Request.Context(), req.Handle, req.ChannelID, req.Categories, req.City, req.RadiusKm, req.IsOwner)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAddressingPath):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "give exactly one of handle or channel_id")
		case errors.Is(err, services.ErrNoCategories):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "at least one category required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, ex)
}

// ListExecutors godoc
// @ID          listExecutors
// @Summary     List the executor roster
// @Description Returns every executor with its resolved addressing: the bound user's
// @Description handle and channel when linked, the pending handle or direct channel
// @Description otherwise.
// @Tags        Admin
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Admin channel id"  example(111)
//
// @Success     200  {object}  handlers.ListExecutorsResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin only"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/executors [get]
func (h *Handlers) ListExecutors(c *gin.Context) {
	items, err := h.executorSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []repo.ExecutorAccount{}
	}
	ok(c, http.StatusOK, ListExecutorsResponse{Executors: items})
}

// UpdateExecutorLocation godoc
// @ID          updateExecutorLocation
// @Summary     Set an executor's base location
// @Description Stores the coordinates the service radius is measured from. Executors
// @Description without a location are never matched.
// @Tags        Admin
// @Accept      json
//
// @Param       X-Actor-ID  header  string  true  "Admin channel id"  example(111)
// @Param       id          path    int     true  "Executor ID"       example(3)
// @Param       body        body    handlers.UpdateExecutorLocationRequest  true  "Coordinates"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Coordinates out of range"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin only"
// @Failure     404  {object}  handlers.ErrorResponse  "Executor not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/executors/{id}/location [put]
func (h *Handlers) UpdateExecutorLocation(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req UpdateExecutorLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "lat and lon required")
		return
	}

	if err := h.executorSvc.SetLocation(c.Request.Context(), id, *req.Lat, *req.Lon); err != nil {
		switch {
		case errors.Is(err, services.ErrExecutorNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "executor not found")
		case errors.Is(err, services.ErrInvalidLocation):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "coordinates out of range")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// UpdateExecutorActive godoc
// @ID          updateExecutorActive
// @Summary     Activate or deactivate an executor
// @Description Toggles whether the executor participates in matching and dispatch.
// @Tags        Admin
// @Accept      json
//
// @Param       X-Actor-ID  header  string  true  "Admin channel id"  example(111)
// @Param       id          path    int     true  "Executor ID"       example(3)
// @Param       body        body    handlers.UpdateExecutorActiveRequest  true  "Activity flag"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin only"
// @Failure     404  {object}  handlers.ErrorResponse  "Executor not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/executors/{id}/active [put]
func (h *Handlers) UpdateExecutorActive(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req UpdateExecutorActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "active required")
		return
	}

	if err := h.executorSvc.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		switch {
		case errors.Is(err, services.ErrExecutorNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "executor not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}
