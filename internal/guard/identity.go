package guard

import "github.com/campusbridge/campusbridge/internal/models"

// Identity is the resolved caller for one request. It is built exactly once by
// the authentication middleware from a verified access token and is never
// mutated afterwards; every later decision (role check, ownership check,
// subscription check) reads from it.
type Identity struct {
	UserID    string
	Role      models.Role
	CollegeID string // empty for the global admin
}
