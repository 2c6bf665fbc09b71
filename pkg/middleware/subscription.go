package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/pkg/metrics"
)

// SubscriptionChecker is the minimal interface the subscription gate depends on.
type SubscriptionChecker interface {
	CheckSubscription(ctx context.Context, collegeID string) error
}

// RequireActiveSubscription returns a Gin middleware that rejects the request
// unless the caller's college holds an active subscription. It must be
// registered after Authenticate and RequireRoles so that a caller who lacks
// the role never learns subscription state.
func RequireActiveSubscription(ch SubscriptionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			unauthorized(c)
			return
		}
		err := ch.CheckSubscription(c.Request.Context(), id.CollegeID)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, guard.ErrSubscriptionExpired):
			metrics.AuthDenied.WithLabelValues("subscription_expired").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "college subscription is not active", "code": "subscription_expired"})
		case errors.Is(err, guard.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "college not found"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "subscription check failed"})
		}
	}
}
