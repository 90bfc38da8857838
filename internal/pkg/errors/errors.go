package errors

import "errors"

var (
	ErrInvalidPhoneFormat        = errors.New("invalid phone number format")
	ErrDispatchFailed            = errors.New("failed to send verification code")
	ErrInvalidOrExpiredCode      = errors.New("invalid or expired verification code")
	ErrMissingRegistrationFields = errors.New("name and role are required for new accounts")
	ErrUnauthenticated           = errors.New("authentication required")
	ErrInvalidToken              = errors.New("invalid or expired token")
	ErrAccountNotFound           = errors.New("account not found")
	ErrInvalidRole               = errors.New("invalid role, allowed values: job_seeker, employer")
	ErrRateLimited               = errors.New("too many verification code requests")
)
