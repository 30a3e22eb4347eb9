package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"safeline/internal/common"
	"safeline/internal/models"
	"safeline/internal/storage"
	"safeline/internal/users"
)

func setupManager(t *testing.T) (*Manager, storage.KV) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE storage (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	kv := storage.NewSQLiteStore(db)
	return NewManager(users.NewStore(kv), kv), kv
}

func register(t *testing.T, m *Manager) *models.UserRecord {
	t.Helper()
	rec, err := m.Register(context.Background(), models.UserRecord{
		Username:        "alice",
		Email:           "alice@example.com",
		EmergencyNumber: "555",
		Gender:          models.GenderFemale,
	}, []byte("pw123"))
	require.NoError(t, err)
	return rec
}

func TestRegister_LogsInImmediately(t *testing.T) {
	m, _ := setupManager(t)

	rec := register(t, m)
	assert.True(t, m.Active())
	assert.Equal(t, rec, m.Current())
}

func TestLogin_WrongPassword_DoesNotAlterSession(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	register(t, m)
	require.NoError(t, m.Logout(ctx))

	_, err := m.Login(ctx, "alice", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, m.Active())
	assert.Nil(t, m.Current())
}

func TestLogin_Success(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	register(t, m)
	require.NoError(t, m.Logout(ctx))

	rec, err := m.Login(ctx, "alice", []byte("pw123"))
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Username)
	assert.True(t, m.Active())
}

func TestLogout_ClearsPersistedState(t *testing.T) {
	m, kv := setupManager(t)
	ctx := context.Background()

	register(t, m)
	require.NoError(t, m.Logout(ctx))

	v, err := kv.Get(ctx, storage.KeyCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, v)

	// a fresh manager over the same storage restores nothing
	m2 := NewManager(users.NewStore(kv), kv)
	rec, err := m2.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.False(t, m2.Active())
}

func TestLogout_IsIdempotent(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	require.NoError(t, m.Logout(ctx))
	register(t, m)
	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx))
	assert.False(t, m.Active())
}

func TestRestore_AfterRegister(t *testing.T) {
	m, kv := setupManager(t)
	ctx := context.Background()

	register(t, m)

	m2 := NewManager(users.NewStore(kv), kv)
	rec, err := m2.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "alice", rec.Username)
	assert.True(t, m2.Active())
}

func TestRestore_TamperedTokenClearsKey(t *testing.T) {
	m, kv := setupManager(t)
	ctx := context.Background()

	register(t, m)
	require.NoError(t, kv.Set(ctx, storage.KeyCurrentUser, []byte("garbage")))

	m2 := NewManager(users.NewStore(kv), kv)
	rec, err := m2.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)

	v, err := kv.Get(ctx, storage.KeyCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")

	token, err := signToken("alice", secret)
	require.NoError(t, err)

	username, err := parseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = parseToken(token, []byte("other-secret-other-secret-other!"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
