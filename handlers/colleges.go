package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/colleges"
	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/pkg/middleware"
)

// CollegeHandler exposes college onboarding and subscription management.
// Both are global-admin operations; TNP admins may read their own college.
type CollegeHandler struct {
	collegesSvc *colleges.Service
	parser      middleware.IdentityParser
}

func NewCollegeHandler(col *colleges.Service, p middleware.IdentityParser) *CollegeHandler {
	return &CollegeHandler{collegesSvc: col, parser: p}
}

// Register routes under the given group (normally /api/v1).
func (h *CollegeHandler) Register(rg *gin.RouterGroup) {
	auth := middleware.Authenticate(h.parser)

	rg.POST("/colleges", auth, middleware.RequireRoles(models.RoleGlobalAdmin), h.Create)
	rg.GET("/colleges/:collegeId", auth,
		middleware.RequireRoles(models.RoleGlobalAdmin, models.RoleTnpAdmin),
		h.Get)
	rg.PUT("/colleges/:collegeId/subscription", auth,
		middleware.RequireRoles(models.RoleGlobalAdmin),
		h.SetSubscription)
}

type createCollegeRequest struct {
	Name         string              `json:"name" binding:"required"`
	Subscription models.Subscription `json:"subscription"`
}

func (h *CollegeHandler) Create(c *gin.Context) {
	var req createCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.collegesSvc.Create(c.Request.Context(), &models.College{
		Name:         req.Name,
		Subscription: req.Subscription,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"college": created})
}

func (h *CollegeHandler) Get(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	collegeID := c.Param("collegeId")
	if err := guard.AuthorizeCollegeTarget(id, collegeID); err != nil {
		respondError(c, err)
		return
	}
	college, err := h.collegesSvc.Get(c.Request.Context(), collegeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"college": college})
}

func (h *CollegeHandler) SetSubscription(c *gin.Context) {
	var sub models.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collegeID := c.Param("collegeId")
	if err := h.collegesSvc.SetSubscription(c.Request.Context(), collegeID, sub); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collegeId": collegeID, "subscription": sub})
}
