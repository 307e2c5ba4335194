package auth

import (
	"context"
	"time"
)

// RefreshToken is one persisted refresh session. Revoked tokens keep their
// row until the expiry sweep removes them, so a replay after logout is
// distinguishable from an unknown token.
type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (t RefreshToken) Valid(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, t RefreshToken) error
	Get(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	// DeleteExpired prunes tokens past their expiry, run from the cron sweep.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
