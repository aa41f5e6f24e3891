// Package token issues and verifies the signed access tokens exchanged for a
// confirmation code. A token carries only the username claim; role and id are
// re-read from the database on every request so role changes apply without
// re-issuing tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the signature checked out but the token is past
	// its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers malformed tokens and signature failures.
	ErrTokenInvalid = errors.New("invalid token")
)

// Config is the process-wide signing configuration, loaded once at startup.
type Config struct {
	Secret string
	TTL    time.Duration
}

// Manager handles access token operations.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(cfg Config) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// Issue produces an HS256-signed token with the username as subject and an
// absolute expiry of now + TTL.
func (m *Manager) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the username claim.
// Expired and invalid tokens are distinguished so callers can log them
// separately, even though both surface as 401 on the wire.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
