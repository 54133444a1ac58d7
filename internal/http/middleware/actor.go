// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file resolves the calling actor's identity. The service sits behind a
// trusted chat frontend that authenticates people on its own transport and
// forwards who is calling in plain headers; nothing here verifies
// credentials, it only normalizes and stashes what the frontend asserted.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Actor identity headers forwarded by the chat frontend.
const (
	// HeaderActorID carries the numeric channel id of the calling actor.
	HeaderActorID = "X-Actor-ID"
	// HeaderActorHandle carries the actor's messenger handle, if any.
	HeaderActorHandle = "X-Actor-Handle"
	// HeaderActorName carries the actor's display name, if any.
	HeaderActorName = "X-Actor-Name"
)

// Context keys under which the resolved identity is stashed. Handlers read
// these before falling back to the raw headers.
const (
	ctxKeyActorID     = "actorID"
	ctxKeyActorHandle = "actorHandle"
	ctxKeyActorName   = "actorName"
)

// Actor parses the identity headers and stashes the results in the Gin
// context. A missing or malformed id simply leaves the context unset;
// endpoints that need an identity reject the request themselves, so public
// routes (health, metrics, docs) stay reachable.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := strings.TrimSpace(c.GetHeader(HeaderActorID)); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id != 0 {
				c.Set(ctxKeyActorID, id)
			}
		}
		if h := strings.TrimSpace(c.GetHeader(HeaderActorHandle)); h != "" {
			c.Set(ctxKeyActorHandle, strings.TrimPrefix(h, "@"))
		}
		if n := strings.TrimSpace(c.GetHeader(HeaderActorName)); n != "" {
			c.Set(ctxKeyActorName, n)
		}
		c.Next()
	}
}

// ActorChannelID returns the actor channel id stashed by Actor, or 0 when
// the request carried no usable identity.
func ActorChannelID(c *gin.Context) int64 {
	if v, ok := c.Get(ctxKeyActorID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RequireAdmin admits only actors whose channel id is in the configured
// admin set. Requests without an identity get 401; identified non-admins
// get 403. Install it on the admin route group after Actor.
func RequireAdmin(adminIDs []int64) gin.HandlerFunc {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return func(c *gin.Context) {
		id := ActorChannelID(c)
		if id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"message":    "actor identity required",
			})
			return
		}
		if _, ok := admins[id]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "forbidden",
				"message":    "admin only",
			})
			return
		}
		c.Next()
	}
}
