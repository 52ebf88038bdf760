package repository

import "errors"

var (
	// ErrUsernameTaken is returned when an insert hits the unique index on
	// users.username. The index is the enforcement mechanism; any pre-check
	// is only a friendlier early rejection.
	ErrUsernameTaken = errors.New("repository: username already taken")

	// ErrUserNotFound indicates no user row matched.
	ErrUserNotFound = errors.New("repository: user not found")

	// ErrNotFoundOrForbidden covers both a missing publication and an
	// ownership mismatch. Callers cannot tell which, so a failed write
	// does not leak whether the record exists.
	ErrNotFoundOrForbidden = errors.New("repository: publication not found or not owned by caller")
)
