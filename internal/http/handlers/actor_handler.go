// Actor HTTP handlers.
//
// This file exposes REST endpoints for actor identity:
//   - POST /actors/sync   (resolve or create the calling actor)
//   - PUT  /actors/role   (explicit role selection)
//
// It also hosts the handler wiring shared by every endpoint in this package:
// the Handlers struct, its constructor, and the helpers that read the actor
// identity headers forwarded by the trusted chat frontend.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// IdentityService defines actor resolution operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type IdentityService interface {
	// EnsureUser resolves the actor behind channelID, creating the record on
	// first contact and reconciling pending executor links.
	EnsureUser(ctx context.Context, channelID int64, handle, displayName, roleHint string) (*domain.User, error)
	// SetRole applies an explicit role selection for the actor.
	SetRole(ctx context.Context, channelID int64, role string) (*domain.User, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for actors, intake conversations, requests,
// offers, executor administration, and settings. It depends on abstract
// service interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	identitySvc IdentityService
	intakeSvc   IntakeService
	requestSvc  RequestService
	matchSvc    MatchService
	dispatchSvc DispatchService
	offerSvc    OfferService
	executorSvc ExecutorService
	settingsSvc SettingsService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(
	identitySvc IdentityService,
	intakeSvc IntakeService,
	requestSvc RequestService,
	matchSvc MatchService,
	dispatchSvc DispatchService,
	offerSvc OfferService,
	executorSvc ExecutorService,
	settingsSvc SettingsService,
) *Handlers {
	return &Handlers{
		identitySvc: identitySvc,
		intakeSvc:   intakeSvc,
		requestSvc:  requestSvc,
		matchSvc:    matchSvc,
		dispatchSvc: dispatchSvc,
		offerSvc:    offerSvc,
		executorSvc: executorSvc,
		settingsSvc: settingsSvc,
	}
}

//
// Actor identity helpers
//

// actorID extracts the numeric actor channel id from Gin context (set by
// upstream middleware). If absent, it falls back to the "X-Actor-ID" header
// (tests use it). Returns 0 when no identity is available.
func actorID(c *gin.Context) int64 {
	if v, ok := c.Get("actorID"); ok {
		if id, ok := v.(int64); ok && id != 0 {
			return id
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-Actor-ID")); h != "" {
			if id, err := strconv.ParseInt(h, 10, 64); err == nil {
				return id
			}
		}
	}
	return 0
}

// actorHandle returns the actor's messenger handle from context or the
// "X-Actor-Handle" header. Empty when the actor has none.
func actorHandle(c *gin.Context) string {
	if v, ok := c.Get("actorHandle"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		return strings.TrimSpace(c.GetHeader("X-Actor-Handle"))
	}
	return ""
}

// actorName returns the actor's display name from context or the
// "X-Actor-Name" header.
func actorName(c *gin.Context) string {
	if v, ok := c.Get("actorName"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		return strings.TrimSpace(c.GetHeader("X-Actor-Name"))
	}
	return ""
}

// requireActor resolves the actor channel id or writes a 401 response.
// The second return value reports whether the handler may proceed.
func requireActor(c *gin.Context) (int64, bool) {
	id := actorID(c)
	if id == 0 {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "actor identity required")
		return 0, false
	}
	return id, true
}

// pathID parses a positive integer path parameter or writes a 400 response.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

//
// DTOs
//

// SyncActorRequest is the JSON payload for resolving the calling actor.
type SyncActorRequest struct {
	// Handle optionally updates the stored messenger handle.
	Handle string `json:"handle" example:"bigdig"`
	// DisplayName optionally updates the stored display name.
	DisplayName string `json:"display_name" example:"Dan the Digger"`
	// Role optionally hints a role for first contact ("client" or "executor").
	Role string `json:"role" example:"client"`
}

// SetActorRoleRequest is the JSON payload for an explicit role selection.
type SetActorRoleRequest struct {
	// Role is the selected role.
	Role string `json:"role" binding:"required,oneof=client executor admin" example:"executor"`
}

//
// Handlers
//

// SyncActor godoc
// @ID          syncActor
// @Summary     Sync the calling actor
// @Description Resolves (or creates) the actor behind the X-Actor-ID channel, refreshes
// @Description its profile fields, and reconciles pending executor links for its handle
// @Description and channel.
// @Tags        Actors
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID      header  string  true  "Actor channel id"  example(424242)
// @Param       X-Actor-Handle  header  string  false "Actor handle"      example(bigdig)
// @Param       X-Actor-Name    header  string  false "Actor display name"
// @Param       body            body    handlers.SyncActorRequest  false  "Profile fields (override headers)"
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /actors/sync [post]
func (h *Handlers) SyncActor(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}

	// Body is optional; headers carry the same fields for header-only clients.
	var req SyncActorRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
			return
		}
	}
	handle := strings.TrimSpace(req.Handle)
	if handle == "" {
		handle = actorHandle(c)
	}
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		name = actorName(c)
	}

	u, err := h.identitySvc.EnsureUser(c.Request.Context(), actor, handle, name, strings.TrimSpace(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "role must be client or executor")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, u)
}

// SetActorRole godoc
// @ID          setActorRole
// @Summary     Select the actor's role
// @Description Applies an explicit role selection for the calling actor. The admin role
// @Description is only granted to channel ids in the configured admin set.
// @Tags        Actors
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       body        body    handlers.SetActorRoleRequest  true  "Role selection"
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid role"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin role not allowed"
// @Failure     404  {object}  handlers.ErrorResponse  "Actor unknown"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /actors/role [put]
func (h *Handlers) SetActorRole(c *gin.Context) {
	actor, okA := requireActor(c)
	if !okA {
		return
	}

	var req SetActorRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "role must be client, executor or admin")
		return
	}

	u, err := h.identitySvc.SetRole(c.Request.Context(), actor, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "actor unknown; sync first")
		case errors.Is(err, services.ErrInvalidRole):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "role must be client, executor or admin")
		case errors.Is(err, services.ErrAdminRestricted):
			fail(c, http.StatusForbidden, ErrCodeForbidden, "admin role is restricted")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, u)
}
