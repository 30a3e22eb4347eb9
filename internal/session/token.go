package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"safeline/internal/common"
	"safeline/internal/storage"
)

// secretSize is the number of random bytes backing the per-install signing
// secret (stored hex-encoded, so twice as many characters).
const secretSize = 32

// loadOrCreateSecret returns the per-install HMAC secret used to sign the
// persisted session token, generating and persisting one on first use.
func loadOrCreateSecret(ctx context.Context, kv storage.KV) ([]byte, error) {
	secret, err := kv.Get(ctx, storage.KeySessionSecret)
	if err != nil {
		return nil, err
	}
	if len(secret) > 0 {
		return secret, nil
	}

	s, err := common.MakeRandHexString(secretSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	secret = []byte(s)
	if err := kv.Set(ctx, storage.KeySessionSecret, secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// signToken produces a signed token carrying the username as subject. The
// token has no expiry: like the browser storage it replaces, a session lasts
// until an explicit logout.
func signToken(username string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  username,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString(secret)
}

// parseToken validates the signature and returns the username carried in the
// token, or common.ErrInvalidToken.
func parseToken(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}
	return claims.Subject, nil
}
