package cron

import (
	"context"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/auth"
)

// RefreshTokenPruneInterval is how often expired refresh tokens are removed.
const RefreshTokenPruneInterval = time.Hour

// RegisterRefreshTokenPrune schedules removal of refresh tokens past their
// expiry. Revoked-but-unexpired rows are kept so reuse of a rotated token
// keeps failing with a revocation error rather than an unknown-token one.
func RegisterRefreshTokenPrune(s *Scheduler, repo auth.RefreshTokenRepository) {
	s.AddJob("refresh-token-prune", RefreshTokenPruneInterval, func(ctx context.Context) error {
		_, err := repo.DeleteExpired(ctx, time.Now().UTC())
		return err
	})
}
