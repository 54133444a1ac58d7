package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

func TestGetSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Defaults come back when nothing was ever written.
	{
		h := newStubHandlers(nil)
		r := gin.New()
		r.GET("/admin/settings", h.GetSettings)
		w := perform(r, http.MethodGet, "/admin/settings", "111", "")
		if w.Code != http.StatusOK {
			t.Fatalf("settings -> %d body=%s", w.Code, w.Body.String())
		}
		var out domain.Setting
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !out.PreferOwnerFirst {
			t.Fatalf("settings -> %+v", out)
		}
	}

	// Storage trouble.
	{
		h := newStubHandlers(func(h *Handlers) {
			h.settingsSvc = stubSettingsSvc{get: func(context.Context) (*domain.Setting, error) {
				return nil, context.DeadlineExceeded
			}}
		})
		r := gin.New()
		r.GET("/admin/settings", h.GetSettings)
		w := perform(r, http.MethodGet, "/admin/settings", "111", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("settings failure -> %d body=%s", w.Code, w.Body.String())
		}
	}
}

func TestUpdatePreferOwnerFirst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The flag is required; omitting it is not the same as false.
	{
		h := newStubHandlers(func(h *Handlers) {
			h.settingsSvc = stubSettingsSvc{set: func(context.Context, bool) error {
				t.Fatal("service reached on invalid payload")
				return nil
			}}
		})
		r := gin.New()
		r.PUT("/admin/settings/prefer-owner-first", h.UpdatePreferOwnerFirst)
		w := perform(r, http.MethodPut, "/admin/settings/prefer-owner-first", "111", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("toggle missing flag -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Turning the ordering off passes false through the pointer.
	{
		gotEnabled := true
		h := newStubHandlers(func(h *Handlers) {
			h.settingsSvc = stubSettingsSvc{set: func(_ context.Context, enabled bool) error {
				gotEnabled = enabled
				return nil
			}}
		})
		r := gin.New()
		r.PUT("/admin/settings/prefer-owner-first", h.UpdatePreferOwnerFirst)
		w := perform(r, http.MethodPut, "/admin/settings/prefer-owner-first", "111", `{"enabled":false}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("toggle -> %d body=%s", w.Code, w.Body.String())
		}
		if gotEnabled {
			t.Fatal("toggle passed true")
		}
	}

	// Storage trouble.
	{
		h := newStubHandlers(func(h *Handlers) {
			h.settingsSvc = stubSettingsSvc{set: func(context.Context, bool) error {
				return context.DeadlineExceeded
			}}
		})
		r := gin.New()
		r.PUT("/admin/settings/prefer-owner-first", h.UpdatePreferOwnerFirst)
		w := perform(r, http.MethodPut, "/admin/settings/prefer-owner-first", "111", `{"enabled":true}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("toggle failure -> %d body=%s", w.Code, w.Body.String())
		}
	}
}
