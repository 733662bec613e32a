package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) TokenService {
	t.Helper()
	svc, err := NewTokenService(time.Hour, 24*time.Hour, "call-plan-system", "call-plan-clients", false, "", "", "test-secret-key-of-sufficient-length")
	require.NoError(t, err)
	return svc
}

func TestTokenService(t *testing.T) {
	t.Run("requires a secret without RSA keys", func(t *testing.T) {
		_, err := NewTokenService(time.Hour, 24*time.Hour, "iss", "aud", false, "", "", "")
		assert.Error(t, err)
	})

	t.Run("generates a valid access and refresh pair", func(t *testing.T) {
		svc := newTestTokenService(t)

		access, refresh, err := svc.GenerateTokens(42)
		require.NoError(t, err)
		require.NotEmpty(t, access)
		require.NotEmpty(t, refresh)
		assert.NotEqual(t, access, refresh)

		claims, err := svc.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "access", claims.TokenType)
		assert.NotEmpty(t, claims.TokenID)

		refreshClaims, err := svc.ValidateToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, "refresh", refreshClaims.TokenType)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		svc := newTestTokenService(t)

		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		svc := newTestTokenService(t)
		other, err := NewTokenService(time.Hour, 24*time.Hour, "iss", "aud", false, "", "", "a-completely-different-secret")
		require.NoError(t, err)

		access, _, err := other.GenerateTokens(1)
		require.NoError(t, err)

		_, err = svc.ValidateToken(access)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("refresh flow issues a new pair", func(t *testing.T) {
		svc := newTestTokenService(t)

		_, refresh, err := svc.GenerateTokens(7)
		require.NoError(t, err)

		access, newRefresh, err := svc.RefreshToken(refresh)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.NotEqual(t, refresh, newRefresh)
	})

	t.Run("access token cannot be used as refresh token", func(t *testing.T) {
		svc := newTestTokenService(t)

		access, _, err := svc.GenerateTokens(7)
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(access)
		assert.Error(t, err)
	})

	t.Run("revoked token stops validating", func(t *testing.T) {
		svc := newTestTokenService(t)

		access, _, err := svc.GenerateTokens(9)
		require.NoError(t, err)

		require.NoError(t, svc.RevokeToken(access))
		assert.True(t, svc.IsTokenRevoked(access))

		_, err = svc.ValidateToken(access)
		assert.ErrorIs(t, err, ErrTokenRevoked)

		// Revoking again is a no-op
		assert.NoError(t, svc.RevokeToken(access))
	})

	t.Run("revocation is scoped to one token", func(t *testing.T) {
		svc := newTestTokenService(t)

		first, _, err := svc.GenerateTokens(9)
		require.NoError(t, err)
		second, _, err := svc.GenerateTokens(9)
		require.NoError(t, err)

		require.NoError(t, svc.RevokeToken(first))

		_, err = svc.ValidateToken(second)
		assert.NoError(t, err)
	})
}
