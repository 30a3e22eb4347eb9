// Package common defines shared constants and sentinel errors used across
// Safeline components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")
	ErrInvalidToken       = errors.New("invalid session token")

	// Contact book errors.
	ErrValidation      = errors.New("validation error")
	ErrIndexOutOfRange = errors.New("index out of range")
)
