package jwt

import (
	"context"
	"testing"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret", "15m", "720h")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	id := Identity{
		UserID:    "u-1",
		Role:      user.RoleWorker,
		CompanyID: "c-1",
		WorkerID:  "u-1",
	}

	token, expiresAt, err := svc.GenerateAccessToken(id)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "access", claims["type"])

	got, ok := IdentityFromClaims(claims)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "u-1", claims["user_id"])
}

func TestRevokeToken(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestIdentityFromClaims_MissingUserID(t *testing.T) {
	t.Parallel()

	_, ok := IdentityFromClaims(map[string]interface{}{"role": "C"})
	assert.False(t, ok)

	_, ok = IdentityFromClaims(map[string]interface{}{"user_id": "", "role": "C"})
	assert.False(t, ok)
}

func TestRefreshTokenCookie(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("tok", 1735689600)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}