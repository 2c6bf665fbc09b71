package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateCollege_GlobalAdminOnly(t *testing.T) {
	p := newPortal(t)

	existing := p.seedCollege(t, "IIT-A", true, time.Now().Add(24*time.Hour))
	admin := p.seedTnpAdmin(t, existing, "admin@iita.edu")

	body := `{"name":"IIT-B","subscription":{"active":true,"expiresAt":"2027-01-01T00:00:00Z"}}`

	w := p.do(t, "POST", "/api/v1/colleges", p.tokenFor(t, admin), body)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = p.do(t, "POST", "/api/v1/colleges", p.globalAdmin(t), body)
	require.Equal(t, http.StatusCreated, w.Code)
	got := decodeBody(t, w)["college"].(map[string]interface{})
	require.NotEmpty(t, got["id"])
	require.Equal(t, "IIT-B", got["name"])
}

func TestGetCollege_OwnCollegeOnly(t *testing.T) {
	p := newPortal(t)

	colA := p.seedCollege(t, "IIT-A", true, time.Now().Add(24*time.Hour))
	colB := p.seedCollege(t, "IIT-B", true, time.Now().Add(24*time.Hour))
	adminA := p.seedTnpAdmin(t, colA, "admin@iita.edu")

	w := p.do(t, "GET", "/api/v1/colleges/"+colA, p.tokenFor(t, adminA), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = p.do(t, "GET", "/api/v1/colleges/"+colB, p.tokenFor(t, adminA), "")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = p.do(t, "GET", "/api/v1/colleges/"+colB, p.globalAdmin(t), "")
	require.Equal(t, http.StatusOK, w.Code)
}

// Renewing a lapsed subscription reopens student onboarding.
func TestSetSubscription_ReopensOnboarding(t *testing.T) {
	p := newPortal(t)

	col := p.seedCollege(t, "IIT-A", true, time.Now().Add(-time.Hour))
	admin := p.seedTnpAdmin(t, col, "admin@iita.edu")

	studentBody := `{"email":"stu@iita.edu","password":"pw-123456"}`
	w := p.do(t, "POST", "/api/v1/users/students", p.tokenFor(t, admin), studentBody)
	require.Equal(t, http.StatusForbidden, w.Code)

	renewal := `{"active":true,"expiresAt":"` + time.Now().Add(24*time.Hour).UTC().Format(time.RFC3339) + `"}`
	w = p.do(t, "PUT", "/api/v1/colleges/"+col+"/subscription", p.globalAdmin(t), renewal)
	require.Equal(t, http.StatusOK, w.Code)

	w = p.do(t, "POST", "/api/v1/users/students", p.tokenFor(t, admin), studentBody)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestSetSubscription_UnknownCollege(t *testing.T) {
	p := newPortal(t)

	w := p.do(t, "PUT", "/api/v1/colleges/missing/subscription", p.globalAdmin(t),
		`{"active":true,"expiresAt":"2027-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}
