// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, actor identity, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tbourn/go-broker-backend/internal/config"
	"github.com/tbourn/go-broker-backend/internal/http/handlers"
	"github.com/tbourn/go-broker-backend/internal/http/middleware"
	"github.com/tbourn/go-broker-backend/internal/notify"
	"github.com/tbourn/go-broker-backend/internal/repo"
	"github.com/tbourn/go-broker-backend/internal/services"
	"github.com/tbourn/go-broker-backend/internal/session"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), actor identity,
// idempotency and rate limiting, CORS and security headers, health and
// metrics endpoints, and then mounts the versioned public API under /api/v*.
//
// sender delivers chat notices (a Noop sender disables delivery); geocoder
// resolves addresses for the intake flow.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Actor identity (headers → context, consumed downstream)
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per actor/IP, bypass on replay)
//  10. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, sender notify.Sender, geocoder services.Geocoder, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			middleware.HeaderActorName, // display names are PII, keep them out of logs
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Actor identity from the trusted frontend headers
	r.Use(middleware.Actor())

	// 8) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
		},
		func(ctx context.Context, actorChannelID int64, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, actorChannelID, scope, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 9) Token-bucket rate limiter per actor/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByActorOrIP())
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderActorID, middleware.HeaderActorHandle, middleware.HeaderActorName, middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag", "Idempotency-Replayed"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderActorID, middleware.HeaderActorHandle, middleware.HeaderActorName, middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag", "Idempotency-Replayed"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db/collaborators
	sessions := session.NewStore(cfg.SessionTTL)
	identitySvc := &services.IdentityService{DB: db, AdminIDs: cfg.AdminIDs}
	matchSvc := &services.MatchService{DB: db}
	dispatchSvc := &services.DispatchService{
		DB:         db,
		Matcher:    matchSvc,
		Sender:     sender,
		DisplayMax: cfg.CatalogDisplayMax,
	}
	offerSvc := &services.OfferService{DB: db, Sender: sender}
	intakeSvc := &services.IntakeService{
		DB:         db,
		Sessions:   sessions,
		Identity:   identitySvc,
		Geocoder:   geocoder,
		Dispatch:   dispatchSvc,
		Offers:     offerSvc,
		Categories: cfg.Categories,
	}
	requestSvc := &services.RequestService{DB: db, DisplayMax: cfg.CatalogDisplayMax}
	executorSvc := &services.ExecutorService{DB: db, DefaultRadiusKm: cfg.DefaultRadiusKm}
	settingsSvc := &services.SettingsService{DB: db}

	h := handlers.New(identitySvc, intakeSvc, requestSvc, matchSvc, dispatchSvc, offerSvc, executorSvc, settingsSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Actors
		api.POST("/actors/sync", h.SyncActor)
		api.PUT("/actors/role", h.SetActorRole)

		// Request intake conversation
		api.POST("/intake/requests", h.StartRequestIntake)
		api.POST("/intake/requests/mode", h.SetIntakeMode)
		api.POST("/intake/requests/category", h.SetIntakeCategory)
		api.POST("/intake/requests/description", h.SetIntakeDescription)
		api.POST("/intake/requests/location", h.SetIntakeLocation)
		api.POST("/intake/requests/address", h.SetIntakeAddress)
		api.POST("/intake/requests/geocode", h.PickIntakeAddress)
		api.DELETE("/intake/requests", h.CancelRequestIntake)

		// Offer intake conversation
		api.POST("/intake/offers", h.StartOfferIntake)
		api.POST("/intake/offers/rate-type", h.SetOfferRateType)
		api.POST("/intake/offers/rate-value", h.SetOfferRateValue)
		api.POST("/intake/offers/comment", h.SetOfferComment)
		api.DELETE("/intake/offers", h.CancelOfferIntake)

		// Requests
		api.GET("/requests", h.ListRequests)
		api.GET("/requests/:id/candidates", h.ListCandidates)
		api.POST("/requests/:id/dispatch", h.DispatchRequestToExecutor)
		api.GET("/requests/:id/offers", h.ListRequestOffers)

		// Offers
		api.POST("/offers/:id/accept", h.AcceptOffer)

		// Administration (configured channel ids only)
		admin := api.Group("/admin", middleware.RequireAdmin(cfg.AdminIDs))
		{
			admin.POST("/executors", h.RegisterExecutor)
			admin.GET("/executors", h.ListExecutors)
			admin.PUT("/executors/:id/location", h.UpdateExecutorLocation)
			admin.PUT("/executors/:id/active", h.UpdateExecutorActive)
			admin.GET("/settings", h.GetSettings)
			admin.PUT("/settings/prefer-owner-first", h.UpdatePreferOwnerFirst)
		}
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
