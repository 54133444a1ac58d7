// Request HTTP handlers.
//
// This file exposes REST endpoints for the client's view of requests:
//   - GET  /requests                  (my requests, paginated, ETag support)
//   - GET  /requests/{id}/candidates  (ranked matching executors)
//   - POST /requests/{id}/dispatch    (targeted send to one executor)
//   - GET  /requests/{id}/offers      (offers received, anonymized)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/repo"
	"github.com/tbourn/go-broker-backend/internal/services"
	"github.com/tbourn/go-broker-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// RequestService defines the client-facing request views consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RequestService interface {
	// ListRequests returns a page of the client's requests, newest first,
	// each with its offer count, plus the total count.
	ListRequests(ctx context.Context, clientUserID uint, page, pageSize int) ([]services.RequestSummary, int64, error)
	// ListOffers returns the newest offers on a request with executors
	// shown as anonymized labels.
	ListOffers(ctx context.Context, requestID uint, max int) ([]services.OfferView, error)
}

// MatchService defines candidate computation consumed by HTTP handlers.
type MatchService interface {
	// FindCandidates returns the ranked executors matching a request.
	FindCandidates(ctx context.Context, requestID uint) ([]services.Candidate, error)
}

// DispatchService defines targeted delivery consumed by HTTP handlers.
type DispatchService interface {
	// SendDirect pushes one request notice to one executor and reports
	// whether it was delivered.
	SendDirect(ctx context.Context, requestID, executorID uint) (bool, error)
}

//
// DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListRequestsResponse wraps a page of requests and pagination information.
type ListRequestsResponse struct {
	Requests   []services.RequestSummary `json:"requests"`
	Pagination Pagination                `json:"pagination"`
}

// CandidatesResponse wraps the ranked candidates for a request.
type CandidatesResponse struct {
	Candidates []services.Candidate `json:"candidates"`
}

// DispatchRequest is the JSON payload for a targeted send.
type DispatchRequest struct {
	ExecutorID uint `json:"executor_id" binding:"required" example:"3"`
}

// DispatchResponse reports whether a targeted send reached the executor.
// Delivered is false when the executor has no reachable channel yet or the
// transport refused the notice; the request itself is unaffected.
type DispatchResponse struct {
	Delivered bool `json:"delivered"`
}

// ListRequestOffersResponse wraps the offers received on a request.
type ListRequestOffersResponse struct {
	Offers []services.OfferView `json:"offers"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// ListRequests godoc
// @ID          listRequests
// @Summary     List my requests (paginated)
// @Description Returns a page of the calling actor's requests, newest first, each with
// @Description its offer count. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Requests
// @Produce     json
//
// @Param       X-Actor-ID     header  string  true  "Actor channel id"            example(424242)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                 minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"              minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListRequestsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Missing actor identity"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /requests [get]
func (h *Handlers) ListRequests(c *gin.Context) {
	ctx := c.Request.Context()
	actor, okA := requireActor(c)
	if !okA {
		return
	}

	u, err := h.identitySvc.EnsureUser(ctx, actor, actorHandle(c), actorName(c), "")
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, ok := h.requestSvc.(*services.RequestService); ok {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.RequestsStats(ctx, db, u.ID)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"requests:%d:%d:%d"`, u.ID, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	page, pageSize := clampPagination(c)
	items, total, err := h.requestSvc.ListRequests(ctx, u.ID, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListRequestsResponse{
		Requests: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// ListCandidates godoc
// @ID          listCandidates
// @Summary     List matching executors for a request
// @Description Returns the ranked candidates for a request: active executors covering
// @Description its category whose service radius reaches the job site, owners first
// @Description when the marketplace is configured that way. An unknown id yields an
// @Description empty list.
// @Tags        Requests
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       id          path    int     true  "Request ID"        example(7)
//
// @Success     200  {object} handlers.CandidatesResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad id"
// @Failure     401  {object} handlers.ErrorResponse "Missing actor identity"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /requests/{id}/candidates [get]
func (h *Handlers) ListCandidates(c *gin.Context) {
	if _, okA := requireActor(c); !okA {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	cands, err := h.matchSvc.FindCandidates(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if cands == nil {
		cands = []services.Candidate{}
	}
	ok(c, http.StatusOK, CandidatesResponse{Candidates: cands})
}

// DispatchRequestToExecutor godoc
// @ID          dispatchRequest
// @Summary     Send a request to one executor
// @Description Pushes the request notice, with an offer action, to a single executor.
// @Description Delivery is reported in the body: an executor without a reachable
// @Description channel yields delivered=false, not an error.
// @Tags        Requests
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       id          path    int     true  "Request ID"        example(7)
// @Param       body        body    handlers.DispatchRequest  true  "Target executor"
//
// @Success     200  {object} handlers.DispatchResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Missing actor identity"
// @Failure     404  {object} handlers.ErrorResponse "Request or executor not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /requests/{id}/dispatch [post]
func (h *Handlers) DispatchRequestToExecutor(c *gin.Context) {
	if _, okA := requireActor(c); !okA {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "executor_id required")
		return
	}

	delivered, err := h.dispatchSvc.SendDirect(c.Request.Context(), id, req.ExecutorID)
	if err != nil {
		switch err {
		case services.ErrRequestNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "request not found")
		case services.ErrExecutorNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "executor not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDispatchFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, DispatchResponse{Delivered: delivered})
}

// ListRequestOffers godoc
// @ID          listRequestOffers
// @Summary     List offers on a request
// @Description Returns the newest offers received on a request. Executors appear under
// @Description anonymized labels; contacts stay hidden until an offer is accepted.
// @Tags        Requests
// @Produce     json
//
// @Param       X-Actor-ID  header  string  true  "Actor channel id"  example(424242)
// @Param       id          path    int     true  "Request ID"        example(7)
// @Param       limit       query   int     false "Cap on returned offers"
//
// @Success     200  {object} handlers.ListRequestOffersResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad id"
// @Failure     401  {object} handlers.ErrorResponse "Missing actor identity"
// @Failure     404  {object} handlers.ErrorResponse "Request not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /requests/{id}/offers [get]
func (h *Handlers) ListRequestOffers(c *gin.Context) {
	if _, okA := requireActor(c); !okA {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	limit := utils.AtoiDefault(c.Query("limit"), 0)
	offers, err := h.requestSvc.ListOffers(c.Request.Context(), id, limit)
	if err != nil {
		switch err {
		case services.ErrRequestNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "request not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}
	if offers == nil {
		offers = []services.OfferView{}
	}
	ok(c, http.StatusOK, ListRequestOffersResponse{Offers: offers})
}
