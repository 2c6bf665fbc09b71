package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/colleges"
	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/users"
	"github.com/campusbridge/campusbridge/pkg/middleware"
)

// UserHandler exposes account management per the protected-operation table:
// the global admin creates TNP admins, TNP admins manage students of their
// own college, students maintain their own profile.
type UserHandler struct {
	usersSvc    *users.Service
	collegesSvc *colleges.Service
	parser      middleware.IdentityParser
}

func NewUserHandler(u *users.Service, col *colleges.Service, p middleware.IdentityParser) *UserHandler {
	return &UserHandler{usersSvc: u, collegesSvc: col, parser: p}
}

// Register routes under the given group (normally /api/v1).
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	auth := middleware.Authenticate(h.parser)

	rg.POST("/users/tnp-admin", auth,
		middleware.RequireRoles(models.RoleGlobalAdmin),
		h.CreateTnpAdmin)

	// the only subscription-gated operation: onboarding a student seat
	rg.POST("/users/students", auth,
		middleware.RequireRoles(models.RoleTnpAdmin),
		middleware.RequireActiveSubscription(h.collegesSvc),
		h.CreateStudent)

	rg.PUT("/users/students/:studentId/profile", auth,
		middleware.RequireRoles(models.RoleStudent, models.RoleTnpAdmin),
		h.UpdateStudentProfile)

	rg.DELETE("/users/students/:studentId", auth,
		middleware.RequireRoles(models.RoleTnpAdmin),
		h.DeleteStudent)

	rg.GET("/colleges/:collegeId/users", auth,
		middleware.RequireRoles(models.RoleGlobalAdmin, models.RoleTnpAdmin),
		h.ListCollegeUsers)
}

type createAccountRequest struct {
	Email     string                 `json:"email" binding:"required"`
	Name      string                 `json:"name"`
	Password  string                 `json:"password" binding:"required"`
	CollegeID string                 `json:"collegeId"`
	Profile   *models.StudentProfile `json:"profile"`
}

func (h *UserHandler) CreateTnpAdmin(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// the target college must exist before an admin is attached to it
	if _, err := h.collegesSvc.Get(c.Request.Context(), req.CollegeID); err != nil {
		respondError(c, err)
		return
	}
	u, err := h.usersSvc.CreateTnpAdmin(c.Request.Context(), req.CollegeID, users.NewAccount{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

func (h *UserHandler) CreateStudent(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// a TNP admin can only seat students under their own college
	if req.CollegeID != "" {
		if err := guard.AuthorizeCollegeTarget(id, req.CollegeID); err != nil {
			respondError(c, err)
			return
		}
	}
	u, err := h.usersSvc.CreateStudent(c.Request.Context(), id.CollegeID, users.NewAccount{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Profile:  req.Profile,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

func (h *UserHandler) UpdateStudentProfile(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	// ownership on top of the role set: students only themselves, TNP admins
	// only students of their college. The self check runs before the lookup
	// so a student probing another id gets Forbidden, not NotFound.
	studentID := c.Param("studentId")
	var target *models.User
	if err := guard.Run(
		func() error { return guard.AuthorizeStudentSelf(id, studentID) },
		func() error {
			var err error
			target, err = h.usersSvc.GetByID(c.Request.Context(), studentID)
			return err
		},
		func() error { return guard.AuthorizeStudentTarget(id, studentID, target.CollegeID) },
	); err != nil {
		respondError(c, err)
		return
	}
	var profile models.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.usersSvc.UpdateStudentProfile(c.Request.Context(), studentID, &profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": updated})
}

func (h *UserHandler) DeleteStudent(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	studentID := c.Param("studentId")
	var target *models.User
	if err := guard.Run(
		func() error { return guard.AuthorizeStudentSelf(id, studentID) },
		func() error {
			var err error
			target, err = h.usersSvc.GetByID(c.Request.Context(), studentID)
			return err
		},
		func() error { return guard.AuthorizeStudentTarget(id, studentID, target.CollegeID) },
	); err != nil {
		respondError(c, err)
		return
	}
	if err := h.usersSvc.DeleteStudent(c.Request.Context(), studentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ListCollegeUsers(c *gin.Context) {
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
	list, err := h.usersSvc.ListByCollege(c.Request.Context(), collegeID)
	if err != nil {
		respondError(c, err)
		return
	}
	seats, err := h.usersSvc.StudentSeatCount(c.Request.Context(), collegeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list, "studentSeats": seats})
}
