package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("secret", 15*time.Minute, 24*time.Hour)
	userID := newUser("alice").ID

	t.Run("round trip", func(t *testing.T) {
		token, err := issuer.IssueAccess(userID)
		require.NoError(t, err)

		identity, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := issuer.Verify("")
		assert.ErrorIs(t, err, ErrTokenMissing)
	})

	t.Run("expired token is distinct from invalid", func(t *testing.T) {
		past := NewTokenIssuer("secret", time.Minute, time.Hour)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.IssueAccess(userID)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
		assert.NotErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.Verify("not.a.jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer("other-secret", time.Minute, time.Hour)
		token, err := other.IssueAccess(userID)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		token, err := issuer.IssueRefresh(userID)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)

		identity, err := issuer.VerifyRefresh(token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
	})

	t.Run("rejects other signing methods", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, tokenClaims{
			UserID: userID,
			Type:   tokenTypeAccess,
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
