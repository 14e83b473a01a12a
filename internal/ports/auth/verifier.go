package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token de sesión y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// SessionIssuer firma un token de sesión nuevo para un usuario.
type SessionIssuer interface {
	Issue(claims Claims) (token string, expiresAt time.Time, err error)
}
