package guard

import (
	"fmt"
	"time"

	"github.com/campusbridge/campusbridge/internal/models"
)

// Check is one stage of the request pipeline. A nil return passes; a non-nil
// return carries exactly one of the sentinel errors above.
type Check func() error

// Run evaluates checks in order and stops at the first rejection.
func Run(checks ...Check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// Authorize passes iff the caller's role is in the allowed set. The allowed
// set is declared statically at each route, never derived from data.
func Authorize(id Identity, allowed ...models.Role) error {
	for _, r := range allowed {
		if id.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q not permitted", ErrForbidden, id.Role)
}

// AuthorizeStudentSelf rejects a student caller whose target id is not their
// own. It is the part of the student ownership rule that needs no repository
// data, so handlers run it before any lookup and a rejected caller never
// learns whether the target id exists.
func AuthorizeStudentSelf(id Identity, targetStudentID string) error {
	if id.Role == models.RoleStudent && targetStudentID != id.UserID {
		return fmt.Errorf("%w: students may only access their own record", ErrForbidden)
	}
	return nil
}

// AuthorizeStudentTarget enforces the ownership rule for operations that
// target a specific student: a student may only touch themselves, a TNP admin
// only students of their own college. It is checked in addition to the
// role-set check, not instead of it.
func AuthorizeStudentTarget(id Identity, targetStudentID, targetCollegeID string) error {
	switch id.Role {
	case models.RoleStudent:
		if targetStudentID != id.UserID {
			return fmt.Errorf("%w: students may only access their own record", ErrForbidden)
		}
	case models.RoleTnpAdmin:
		if targetCollegeID != id.CollegeID {
			return fmt.Errorf("%w: student belongs to a different college", ErrForbidden)
		}
	case models.RoleGlobalAdmin:
		// unrestricted
	default:
		return fmt.Errorf("%w: unknown role %q", ErrForbidden, id.Role)
	}
	return nil
}

// AuthorizeCollegeTarget enforces the ownership rule for operations scoped to
// a college (listing its users, creating students under it). The global admin
// may target any college; a TNP admin only their own.
func AuthorizeCollegeTarget(id Identity, targetCollegeID string) error {
	if id.Role == models.RoleGlobalAdmin {
		return nil
	}
	if targetCollegeID != id.CollegeID {
		return fmt.Errorf("%w: college %q is not the caller's college", ErrForbidden, targetCollegeID)
	}
	return nil
}

// CheckSubscription passes iff the subscription is active and unexpired at
// now. It runs strictly after authorization so unauthorized callers never
// observe billing state.
func CheckSubscription(sub models.Subscription, now time.Time) error {
	if !sub.Active {
		return fmt.Errorf("%w: subscription is inactive", ErrSubscriptionExpired)
	}
	if now.After(sub.ExpiresAt) {
		return fmt.Errorf("%w: subscription lapsed at %s", ErrSubscriptionExpired, sub.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}
