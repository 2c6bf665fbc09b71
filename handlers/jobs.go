package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/jobs"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/storage"
	"github.com/campusbridge/campusbridge/internal/users"
	"github.com/campusbridge/campusbridge/pkg/logger"
	"github.com/campusbridge/campusbridge/pkg/middleware"
)

// logoURLTTL bounds how long a presigned logo link stays valid.
const logoURLTTL = 15 * time.Minute

// JobHandler exposes job postings. TNP admins author postings for their
// college; students see and apply to the subset they are eligible for.
type JobHandler struct {
	jobsSvc  *jobs.Service
	usersSvc *users.Service
	logos    *storage.LogoStore // nil when object storage is not configured
	parser   middleware.IdentityParser
}

func NewJobHandler(j *jobs.Service, u *users.Service, logos *storage.LogoStore, p middleware.IdentityParser) *JobHandler {
	return &JobHandler{jobsSvc: j, usersSvc: u, logos: logos, parser: p}
}

// Register routes under the given group (normally /api/v1).
func (h *JobHandler) Register(rg *gin.RouterGroup) {
	auth := middleware.Authenticate(h.parser)

	rg.POST("/jobs", auth, middleware.RequireRoles(models.RoleTnpAdmin), h.Create)
	rg.GET("/jobs", auth, middleware.RequireRoles(models.RoleTnpAdmin, models.RoleStudent), h.List)
	rg.GET("/jobs/eligible", auth, middleware.RequireRoles(models.RoleStudent), h.ListEligible)
	rg.GET("/jobs/:jobId", auth, h.Get)
	rg.POST("/jobs/:jobId/apply", auth, middleware.RequireRoles(models.RoleStudent), h.Apply)
	rg.POST("/jobs/:jobId/logo", auth, middleware.RequireRoles(models.RoleTnpAdmin), h.UploadLogo)
}

type createJobRequest struct {
	Title               string                   `json:"title" binding:"required"`
	Description         string                   `json:"description"`
	Company             string                   `json:"company" binding:"required"`
	Location            string                   `json:"location"`
	Type                string                   `json:"type"`
	JobDate             time.Time                `json:"jobDate"`
	EligibilityCriteria jobs.EligibilityCriteria `json:"eligibilityCriteria"`
}

func (h *JobHandler) Create(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j := &jobs.Job{
		Title:               req.Title,
		Description:         req.Description,
		Company:             req.Company,
		Location:            req.Location,
		Type:                req.Type,
		JobDate:             req.JobDate,
		EligibilityCriteria: req.EligibilityCriteria,
	}
	created, err := h.jobsSvc.Create(c.Request.Context(), id.CollegeID, j)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": created})
}

// List returns every posting of the caller's college, newest first.
func (h *JobHandler) List(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	list, err := h.jobsSvc.ListByCollege(c.Request.Context(), id.CollegeID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.attachLogos(c, list)
	c.JSON(http.StatusOK, gin.H{"jobs": list})
}

// ListEligible filters the college's postings against the calling student's
// own academic profile, preserving listing order.
func (h *JobHandler) ListEligible(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	caller, err := h.usersSvc.GetByID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	list, err := h.jobsSvc.ListEligible(c.Request.Context(), id.CollegeID, caller.Profile)
	if err != nil {
		respondError(c, err)
		return
	}
	h.attachLogos(c, list)
	c.JSON(http.StatusOK, gin.H{"jobs": list})
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	j, err := h.jobsSvc.Get(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := guard.AuthorizeCollegeTarget(id, j.CollegeID); err != nil {
		respondError(c, err)
		return
	}
	h.attachLogo(c, j)
	c.JSON(http.StatusOK, gin.H{"job": j})
}

func (h *JobHandler) Apply(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	j, err := h.jobsSvc.Get(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := guard.AuthorizeCollegeTarget(id, j.CollegeID); err != nil {
		respondError(c, err)
		return
	}
	caller, err := h.usersSvc.GetByID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	applied, err := h.jobsSvc.Apply(c.Request.Context(), j.ID, caller.Profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": applied})
}

// UploadLogo stores a company logo for the posting in object storage.
func (h *JobHandler) UploadLogo(c *gin.Context) {
	if h.logos == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "logo storage not configured"})
		return
	}
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	j, err := h.jobsSvc.Get(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := guard.AuthorizeCollegeTarget(id, j.CollegeID); err != nil {
		respondError(c, err)
		return
	}
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is required"})
		return
	}
	defer file.Close()

	key := "logos/" + j.ID
	contentType := header.Header.Get("Content-Type")
	if err := h.logos.Upload(c.Request.Context(), key, file, header.Size, contentType); err != nil {
		logger.Errorf("logo upload failed for job %s: %v", j.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logo upload failed"})
		return
	}
	if err := h.jobsSvc.SetLogoKey(c.Request.Context(), j.ID, key); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobId": j.ID, "logoKey": key})
}

// attachLogos fills presigned URLs for postings that have a stored logo.
func (h *JobHandler) attachLogos(c *gin.Context, list []jobs.Job) {
	for i := range list {
		h.attachLogo(c, &list[i])
	}
}

func (h *JobHandler) attachLogo(c *gin.Context, j *jobs.Job) {
	if h.logos == nil || j.LogoKey == "" {
		return
	}
	u, err := h.logos.PresignedURL(c.Request.Context(), j.LogoKey, logoURLTTL)
	if err != nil {
		logger.Warnf("presign logo %s: %v", j.LogoKey, err)
		return
	}
	j.Logo = u
}
