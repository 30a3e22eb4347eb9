// Package session holds the current authenticated user and persists it
// across restarts.
package session

import (
	"context"
	"errors"

	"safeline/internal/common"
	"safeline/internal/models"
	"safeline/internal/storage"
	"safeline/internal/users"
)

// Manager gates access to the rest of the application: a nil current user
// means nobody is logged in. The persisted form is a signed token holding
// only the username; the record itself is always re-read from the credential
// store, so a session can never reference a user absent from it.
type Manager struct {
	store   *users.Store
	kv      storage.KV
	current *models.UserRecord
}

// NewManager returns a session manager over the given credential store.
func NewManager(store *users.Store, kv storage.KV) *Manager {
	return &Manager{store: store, kv: kv}
}

// Current returns the logged-in user, or nil.
func (m *Manager) Current() *models.UserRecord {
	return m.current
}

// Active reports whether a user is logged in.
func (m *Manager) Active() bool {
	return m.current != nil
}

func (m *Manager) persist(ctx context.Context, username string) error {
	secret, err := loadOrCreateSecret(ctx, m.kv)
	if err != nil {
		return err
	}
	token, err := signToken(username, secret)
	if err != nil {
		return err
	}
	return m.kv.Set(ctx, storage.KeyCurrentUser, []byte(token))
}

// Login verifies the credentials, and on success sets and persists the
// session. On failure the session is left untouched and
// common.ErrInvalidCredentials is returned.
func (m *Manager) Login(ctx context.Context, username string, password []byte) (*models.UserRecord, error) {
	rec, err := m.store.Verify(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := m.persist(ctx, rec.Username); err != nil {
		return nil, err
	}
	m.current = rec
	return rec, nil
}

// Register creates the user and logs them in immediately. Returns
// common.ErrUsernameTaken if the username is already registered.
func (m *Manager) Register(ctx context.Context, rec models.UserRecord, password []byte) (*models.UserRecord, error) {
	created, err := m.store.Register(ctx, rec, password)
	if err != nil {
		return nil, err
	}
	if err := m.persist(ctx, created.Username); err != nil {
		return nil, err
	}
	m.current = created
	return created, nil
}

// Logout clears the persisted session before the in-memory one, so a crash
// in between can never leave a stale persisted session behind. Logging out
// with no active session is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.kv.Delete(ctx, storage.KeyCurrentUser); err != nil {
		return err
	}
	m.current = nil
	return nil
}

// Restore reloads a persisted session at startup. It returns (nil, nil) when
// there is nothing to restore: no persisted token, a token that fails
// validation, or a token referencing a user no longer in the credential
// store. In the latter two cases the stale key is removed.
func (m *Manager) Restore(ctx context.Context) (*models.UserRecord, error) {
	data, err := m.kv.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	secret, err := loadOrCreateSecret(ctx, m.kv)
	if err != nil {
		return nil, err
	}

	username, err := parseToken(string(data), secret)
	if err != nil {
		_ = m.kv.Delete(ctx, storage.KeyCurrentUser)
		return nil, nil
	}

	rec, err := m.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = m.kv.Delete(ctx, storage.KeyCurrentUser)
			return nil, nil
		}
		return nil, err
	}

	m.current = rec
	return rec, nil
}
