package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/pkg/metrics"
)

// respondError maps the guard error taxonomy onto HTTP statuses. Exactly one
// kind per rejection; unauthorized responses stay opaque about the cause.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, guard.ErrUnauthorized):
		metrics.AuthDenied.WithLabelValues("unauthorized").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
	case errors.Is(err, guard.ErrSubscriptionExpired):
		metrics.AuthDenied.WithLabelValues("subscription_expired").Inc()
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "subscription_expired"})
	case errors.Is(err, guard.ErrForbidden):
		metrics.AuthDenied.WithLabelValues("forbidden").Inc()
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, guard.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, guard.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
