// Package storage implements the durable string-keyed store backing all
// persisted application state. Values are opaque byte slices; callers decide
// the encoding (JSON throughout this project).
package storage

import "context"

// Well-known storage keys.
const (
	KeyUsers             = "users"
	KeyCurrentUser       = "currentUser"
	KeyEmergencyContacts = "emergencyContacts"
	KeyTheme             = "theme"
	KeySessionSecret     = "sessionSecret"
)

// KV describes the key-value operations available to repositories.
type KV interface {
	// Get returns the value stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all stored key-value pairs.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes all keys.
	Clear(ctx context.Context) error
}
