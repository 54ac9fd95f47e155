package account

import "errors"

// Repository-level errors
var (
	ErrAccountNotFound = errors.New("account not found")

	// Conflict - mapped từ unique constraint violations
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// Service-level errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoProfile    = errors.New("account has no profile")
)
