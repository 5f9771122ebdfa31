package auth

import (
	"context"
	"time"
)

// RefreshToken is a stored, revocable refresh token. Tokens are rotated on
// every refresh: the presented token is revoked and a new one issued.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	RevokedAt *time.Time
	CreatedAt time.Time
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token RefreshToken) (RefreshToken, error)
	// GetByHash looks a token up by its SHA-256 hash.
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	// DeleteExpired removes tokens past their expiry, returning the count.
	DeleteExpired(ctx context.Context) (int64, error)
}
