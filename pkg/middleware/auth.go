package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/sessions"
	"github.com/campusbridge/campusbridge/pkg/logger"
	"github.com/campusbridge/campusbridge/pkg/metrics"
)

// identityKey is the gin context key the resolved caller is stored under.
const identityKey = "identity"

// IdentityParser is the minimal interface the middleware depends on: it turns
// a raw bearer token into a caller identity or rejects it.
type IdentityParser interface {
	Parse(ctx context.Context, raw string) (guard.Identity, error)
}

// Authenticate returns a Gin middleware that resolves the Authorization
// header into an Identity. It is the first stage of every protected route;
// its output is the sole source of role and college ownership for the rest of
// the request. Rejections never say which part of the credential was wrong.
func Authenticate(p IdentityParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			unauthorized(c)
			return
		}
		// Expect 'Bearer <token>'
		var token string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &token); n != 1 {
			unauthorized(c)
			return
		}
		// a failed blacklist lookup rejects the token, never admits it
		black, err := sessions.IsAccessTokenBlacklisted(c.Request.Context(), token)
		if err != nil {
			logger.Warnf("access token blacklist lookup: %v", err)
			unauthorized(c)
			return
		}
		if black {
			unauthorized(c)
			return
		}
		id, err := p.Parse(c.Request.Context(), token)
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Authenticate.
func IdentityFrom(c *gin.Context) (guard.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return guard.Identity{}, false
	}
	id, ok := v.(guard.Identity)
	return id, ok
}

func unauthorized(c *gin.Context) {
	metrics.AuthDenied.WithLabelValues("unauthorized").Inc()
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
}
