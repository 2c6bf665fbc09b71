package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/campusbridge/internal/colleges"
	"github.com/campusbridge/campusbridge/internal/config"
	"github.com/campusbridge/campusbridge/internal/jobs"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/sessions"
	"github.com/campusbridge/campusbridge/internal/tokens"
	"github.com/campusbridge/campusbridge/internal/users"
)

// memSessionsRepo keeps refresh sessions in a map for handler tests.
type memSessionsRepo struct {
	store map[string]*sessions.Session
}

func (m *memSessionsRepo) Create(ctx context.Context, s *sessions.Session) error {
	if m.store == nil {
		m.store = map[string]*sessions.Session{}
	}
	m.store[s.RefreshToken] = s
	return nil
}

func (m *memSessionsRepo) GetByRefresh(ctx context.Context, refresh string) (*sessions.Session, error) {
	s, ok := m.store[refresh]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (m *memSessionsRepo) DeleteByRefresh(ctx context.Context, refresh string) error {
	delete(m.store, refresh)
	return nil
}

// portal wires the full handler surface over in-memory repositories.
type portal struct {
	cfg         *config.Config
	router      *gin.Engine
	usersSvc    *users.Service
	collegesSvc *colleges.Service
	jobsSvc     *jobs.Service
	sessionsSvc *sessions.Service
	collegeRepo *colleges.MemoryRepository
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "handlers-test-secret-32-bytes-xx"
	cfg.JWT.AccessTokenTTL = 15 * time.Minute
	cfg.JWT.RefreshTokenTTL = time.Hour

	usersSvc := users.NewService(users.NewMemoryUserRepository())
	collegeRepo := colleges.NewMemoryRepository()
	collegesSvc := colleges.NewService(collegeRepo)
	jobsSvc := jobs.NewService(jobs.NewMemoryRepository())
	sessionsSvc := sessions.NewService(&memSessionsRepo{})
	parser := tokens.NewParser(cfg)

	r := gin.New()
	NewAuthHandler(cfg, usersSvc, sessionsSvc, parser).Register(r.Group("/"))
	api := r.Group("/api/v1")
	NewUserHandler(usersSvc, collegesSvc, parser).Register(api)
	NewCollegeHandler(collegesSvc, parser).Register(api)
	NewJobHandler(jobsSvc, usersSvc, nil, parser).Register(api)

	return &portal{
		cfg:         cfg,
		router:      r,
		usersSvc:    usersSvc,
		collegesSvc: collegesSvc,
		jobsSvc:     jobsSvc,
		sessionsSvc: sessionsSvc,
		collegeRepo: collegeRepo,
	}
}

func (p *portal) seedCollege(t *testing.T, name string, active bool, expiresAt time.Time) string {
	t.Helper()
	c, err := p.collegesSvc.Create(context.Background(), &models.College{
		Name:         name,
		Subscription: models.Subscription{Active: active, ExpiresAt: expiresAt},
	})
	require.NoError(t, err)
	return c.ID
}

func (p *portal) seedTnpAdmin(t *testing.T, collegeID, email string) *models.User {
	t.Helper()
	u, err := p.usersSvc.CreateTnpAdmin(context.Background(), collegeID, users.NewAccount{
		Email:    email,
		Name:     "Admin",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	return u
}

func (p *portal) seedStudent(t *testing.T, collegeID, email string, profile *models.StudentProfile) *models.User {
	t.Helper()
	u, err := p.usersSvc.CreateStudent(context.Background(), collegeID, users.NewAccount{
		Email:    email,
		Name:     "Student",
		Password: "s3cret-pass",
		Profile:  profile,
	})
	require.NoError(t, err)
	return u
}

// tokenFor mints a valid access token without going through /auth/login.
func (p *portal) tokenFor(t *testing.T, u *models.User) string {
	t.Helper()
	tok, err := tokens.GenerateAccessToken(p.cfg, u, p.cfg.JWT.AccessTokenTTL)
	require.NoError(t, err)
	return tok
}

// globalAdmin builds the singleton admin identity. It only exists as a token,
// which is enough for routes that do not look the caller up.
func (p *portal) globalAdmin(t *testing.T) string {
	t.Helper()
	return p.tokenFor(t, &models.User{ID: "root", Email: "root@portal.dev", Role: models.RoleGlobalAdmin})
}

func (p *portal) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}
