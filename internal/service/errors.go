package service

import "errors"

var (
	// ErrValidation covers bad input shape: empty username or a password
	// below the minimum length.
	ErrValidation = errors.New("service: invalid input")

	// ErrBadPassword is returned when the supplied password does not match
	// the stored hash.
	ErrBadPassword = errors.New("service: wrong password")

	// ErrUnauthenticated is returned when an operation requiring an
	// established session is called without one. Fail-closed: no session,
	// no repository call.
	ErrUnauthenticated = errors.New("service: authentication required")
)
