// Settings HTTP handlers.
//
// This file exposes the admin-only REST endpoints for marketplace settings:
//   - GET /admin/settings
//   - PUT /admin/settings/prefer-owner-first
//
// There is a single settings row; reads fall back to defaults when it has
// not been written yet.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

// SettingsService defines marketplace settings operations consumed by HTTP
// handlers.
type SettingsService interface {
	// Get returns the effective settings, defaulted when unset.
	Get(ctx context.Context) (*domain.Setting, error)
	// SetPreferOwnerFirst toggles owner-first candidate ordering.
	SetPreferOwnerFirst(ctx context.Context, enabled bool) error
}

// UpdatePreferOwnerFirstRequest is the JSON payload for the ordering toggle.
// A pointer keeps `false` bindable.
type UpdatePreferOwnerFirstRequest struct {
	Enabled *bool `json:"enabled" binding:"required" example:"true"`
}

// GetSettings godoc
// @ID          getSettings
// @Summary     Read marketplace settings
// @Description Returns the effective settings. Defaults apply when nothing has been
// @Description written yet: owner-first ordering is on.
// @Tags        Admin
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Admin channel id"  example(111)
//
// @Success     200  {object}  domain.Setting
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin only"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/settings [get]
func (h *Handlers) GetSettings(c *gin.Context) {
	s, err := h.settingsSvc.Get(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, s)
}

// UpdatePreferOwnerFirst godoc
// @ID          updatePreferOwnerFirst
// @Summary     Toggle owner-first candidate ordering
// @Description Switches between ranking equipment owners above subcontractors and
// @Description ranking purely by distance.
// @Tags        Admin
// @Accept      json
//
// @Param       X-Actor-ID  header  string  true  "Admin channel id"  example(111)
// @Param       body        body    handlers.UpdatePreferOwnerFirstRequest  true  "Toggle"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing actor identity"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin only"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/settings/prefer-owner-first [put]
func (h *Handlers) UpdatePreferOwnerFirst(c *gin.Context) {
	var req UpdatePreferOwnerFirstRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "enabled required")
		return
	}

	if err := h.settingsSvc.SetPreferOwnerFirst(c.Request.Context(), *req.Enabled); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}
