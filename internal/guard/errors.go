package guard

import "errors"

// Sentinel errors for every way a protected operation can be rejected.
// Handlers map these onto HTTP statuses; gates wrap them with a reason.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrSubscriptionExpired = errors.New("subscription expired")
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
)
