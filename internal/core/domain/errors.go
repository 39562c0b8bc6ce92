package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrUserNotFound       = errors.New("user not found")

	ErrBadRequest     = errors.New("bad request")
	ErrReviewNotFound = errors.New("review not found")
	ErrForbidden      = errors.New("access forbidden")

	// ErrDownstream wraps any non-2xx or transport failure from a
	// downstream service. The root cause is logged, never exposed.
	ErrDownstream = errors.New("downstream service failure")

	// ErrBadPayload marks a downstream response missing fields the
	// aggregation layer requires.
	ErrBadPayload = errors.New("malformed downstream payload")
)
