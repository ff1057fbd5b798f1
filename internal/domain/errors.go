package domain

import "errors"

// Sentinel errors for the domain layer. Backend and handler errors wrap these so
// callers can branch with errors.Is.
var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrUnauthorized = errors.New("admin session is missing or expired")
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials indicates the backend rejected an admin login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
