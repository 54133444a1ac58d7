package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/repo"
	"github.com/tbourn/go-broker-backend/internal/services"
)

func TestRegisterExecutor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Categories are required by binding.
	{
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{register: func(context.Context, string, *int64, []string, string, float64, bool) (*domain.Executor, error) {
				t.Fatal("service reached on invalid payload")
				return nil, nil
			}}
		})
		r := gin.New()
		r.POST("/admin/executors", h.RegisterExecutor)
		for _, body := range []string{`{}`, `{"handle":"bigdig","categories":[]}`} {
			w := perform(r, http.MethodPost, "/admin/executors", "111", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("register %s -> %d body=%s", body, w.Code, w.Body.String())
			}
		}
	}

	// Handle and channel id are mutually exclusive.
	{
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{register: func(context.Context, string, *int64, []string, string, float64, bool) (*domain.Executor, error) {
				return nil, services.ErrAddressingPath
			}}
		})
		r := gin.New()
		r.POST("/admin/executors", h.RegisterExecutor)
		w := perform(r, http.MethodPost, "/admin/executors", "111",
			`{"handle":"bigdig","channel_id":99887,"categories":["Excavator"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("register both paths -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Success passes every field through and answers 201.
	{
		var gotHandle, gotCity string
		var gotChannel *int64
		var gotCats []string
		var gotRadius float64
		var gotOwner bool
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{register: func(_ context.Context, handle string, channelID *int64, cats []string, city string, radius float64, owner bool) (*domain.Executor, error) {
				gotHandle, gotChannel, gotCats, gotCity, gotRadius, gotOwner = handle, channelID, cats, city, radius, owner
				return &domain.Executor{ID: 3, PendingHandle: "bigdig", City: "Nizhny Novgorod", RadiusKm: radius, IsOwner: owner, IsActive: true}, nil
			}}
		})
		r := gin.New()
		r.POST("/admin/executors", h.RegisterExecutor)
		w := perform(r, http.MethodPost, "/admin/executors", "111",
			`{"handle":"@bigdig","categories":["Excavator","Loader"],"city":"nizhny novgorod","radius_km":80,"is_owner":true}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("register -> %d body=%s", w.Code, w.Body.String())
		}
		if gotHandle != "@bigdig" || gotChannel != nil || len(gotCats) != 2 || gotCity != "nizhny novgorod" || gotRadius != 80 || !gotOwner {
			t.Fatalf("register passed (%q, %v, %v, %q, %v, %v)", gotHandle, gotChannel, gotCats, gotCity, gotRadius, gotOwner)
		}
		var out domain.Executor
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out.ID != 3 || out.PendingHandle != "bigdig" {
			t.Fatalf("register executor -> %+v", out)
		}
	}

	// Channel addressing round-trips the pointer.
	{
		var gotChannel *int64
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{register: func(_ context.Context, _ string, channelID *int64, _ []string, _ string, _ float64, _ bool) (*domain.Executor, error) {
				gotChannel = channelID
				return &domain.Executor{ID: 4, DirectChannelID: channelID, IsActive: true}, nil
			}}
		})
		r := gin.New()
		r.POST("/admin/executors", h.RegisterExecutor)
		w := perform(r, http.MethodPost, "/admin/executors", "111",
			`{"channel_id":99887,"categories":["Excavator"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("register channel -> %d body=%s", w.Code, w.Body.String())
		}
		if gotChannel == nil || *gotChannel != 99887 {
			t.Fatalf("register passed channel %v", gotChannel)
		}
	}
}

func TestListExecutors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Roster rows carry the resolved addressing.
	{
		handle := "digger"
		channel := int64(701)
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{listAll: func(context.Context) ([]repo.ExecutorAccount, error) {
				return []repo.ExecutorAccount{
					{Executor: domain.Executor{ID: 3, Categories: "Excavator", IsActive: true}, BoundHandle: &handle, BoundChannelID: &channel},
					{Executor: domain.Executor{ID: 4, PendingHandle: "bigdig"}},
				}, nil
			}}
		})
		r := gin.New()
		r.GET("/admin/executors", h.ListExecutors)
		w := perform(r, http.MethodGet, "/admin/executors", "111", "")
		if w.Code != http.StatusOK {
			t.Fatalf("roster -> %d body=%s", w.Code, w.Body.String())
		}
		var out ListExecutorsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(out.Executors) != 2 {
			t.Fatalf("roster rows -> %d", len(out.Executors))
		}
		if out.Executors[0].BoundHandle == nil || *out.Executors[0].BoundHandle != "digger" {
			t.Fatalf("roster binding -> %+v", out.Executors[0])
		}
	}

	// Empty roster is an empty list, never null.
	{
		h := newStubHandlers(nil)
		r := gin.New()
		r.GET("/admin/executors", h.ListExecutors)
		w := perform(r, http.MethodGet, "/admin/executors", "111", "")
		if w.Code != http.StatusOK {
			t.Fatalf("roster -> %d body=%s", w.Code, w.Body.String())
		}
		if want := `"executors":[]`; !jsonBodyContains(w, want) {
			t.Fatalf("roster body misses %q: %s", want, w.Body.String())
		}
	}
}

func TestUpdateExecutorLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Both coordinates are required.
	{
		h := newStubHandlers(nil)
		r := gin.New()
		r.PUT("/admin/executors/:id/location", h.UpdateExecutorLocation)
		w := perform(r, http.MethodPut, "/admin/executors/3/location", "111", `{"lat":56.326}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("location partial -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Unknown executor.
	{
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{setLocation: func(context.Context, uint, float64, float64) error {
				return services.ErrExecutorNotFound
			}}
		})
		r := gin.New()
		r.PUT("/admin/executors/:id/location", h.UpdateExecutorLocation)
		w := perform(r, http.MethodPut, "/admin/executors/999/location", "111", `{"lat":56.326,"lon":44.007}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("location unknown -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Out-of-range coordinates.
	{
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{setLocation: func(context.Context, uint, float64, float64) error {
				return services.ErrInvalidLocation
			}}
		})
		r := gin.New()
		r.PUT("/admin/executors/:id/location", h.UpdateExecutorLocation)
		w := perform(r, http.MethodPut, "/admin/executors/3/location", "111", `{"lat":95,"lon":44.007}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("location out of range -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Success is a bare 204.
	{
		var gotID uint
		var gotLat, gotLon float64
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{setLocation: func(_ context.Context, id uint, lat, lon float64) error {
				gotID, gotLat, gotLon = id, lat, lon
				return nil
			}}
		})
		r := gin.New()
		r.PUT("/admin/executors/:id/location", h.UpdateExecutorLocation)
		w := perform(r, http.MethodPut, "/admin/executors/3/location", "111", `{"lat":56.326,"lon":44.007}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("location -> %d body=%s", w.Code, w.Body.String())
		}
		if gotID != 3 || gotLat != 56.326 || gotLon != 44.007 {
			t.Fatalf("location passed (%d, %v, %v)", gotID, gotLat, gotLon)
		}
	}
}

func TestUpdateExecutorActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The flag is required; a bare body cannot default to false.
	{
		h := newStubHandlers(nil)
		r := gin.New()
		r.PUT("/admin/executors/:id/active", h.UpdateExecutorActive)
		w := perform(r, http.MethodPut, "/admin/executors/3/active", "111", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("active missing flag -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Unknown executor.
	{
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{setActive: func(context.Context, uint, bool) error {
				return services.ErrExecutorNotFound
			}}
		})
		r := gin.New()
		r.PUT("/admin/executors/:id/active", h.UpdateExecutorActive)
		w := perform(r, http.MethodPut, "/admin/executors/999/active", "111", `{"active":true}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("active unknown -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Deactivation passes false through the pointer.
	{
		var gotID uint
		gotActive := true
		h := newStubHandlers(func(h *Handlers) {
			h.executorSvc = stubExecutorSvc{setActive: func(_ context.Context, id uint, active bool) error {
				gotID, gotActive = id, active
				return nil
			}}
		})
		r := gin.New()
		r.PUT("/admin/executors/:id/active", h.UpdateExecutorActive)
		w := perform(r, http.MethodPut, "/admin/executors/3/active", "111", `{"active":false}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("active -> %d body=%s", w.Code, w.Body.String())
		}
		if gotID != 3 || gotActive {
			t.Fatalf("active passed (%d, %v)", gotID, gotActive)
		}
	}
}
