// Package users implements the credential store: the durable map of
// username to registered user record.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"safeline/internal/common"
	"safeline/internal/models"
	"safeline/internal/storage"
)

// Store persists user records as a JSON map under a single storage key.
// Usernames are unique; records are immutable once registered. There is no
// delete or update operation.
type Store struct {
	kv storage.KV
}

// NewStore returns a credential store backed by the given KV.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) loadAll(ctx context.Context) (map[string]models.UserRecord, error) {
	data, err := s.kv.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	users := make(map[string]models.UserRecord)
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *Store) saveAll(ctx context.Context, users map[string]models.UserRecord) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	return s.kv.Set(ctx, storage.KeyUsers, data)
}

// Register creates a new user record. The password is hashed with bcrypt
// before the record is persisted; rec.PasswordHash is ignored on input.
// Returns common.ErrUsernameTaken if the username key is already present.
func (s *Store) Register(ctx context.Context, rec models.UserRecord, password []byte) (*models.UserRecord, error) {
	users, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	if _, exists := users[rec.Username]; exists {
		return nil, common.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	rec.PasswordHash = string(hash)

	users[rec.Username] = rec
	if err := s.saveAll(ctx, users); err != nil {
		return nil, err
	}

	return &rec, nil
}

// FindByUsername returns the record registered under username, or
// common.ErrNotFound.
func (s *Store) FindByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	users, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &rec, nil
}

// Verify returns the record only if username exists and password matches its
// stored hash; otherwise common.ErrInvalidCredentials. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *Store) Verify(ctx context.Context, username string, password []byte) (*models.UserRecord, error) {
	rec, err := s.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), password); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return rec, nil
}
