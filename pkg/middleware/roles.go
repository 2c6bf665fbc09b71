package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/pkg/metrics"
)

// RequireRoles returns a Gin middleware enforcing the route's statically
// declared allowed-role set. It runs after Authenticate and before any
// subscription check or handler; a caller whose role is not in the set is
// rejected here and observes nothing further.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			unauthorized(c)
			return
		}
		if err := guard.Authorize(id, allowed...); err != nil {
			metrics.AuthDenied.WithLabelValues("forbidden").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}
