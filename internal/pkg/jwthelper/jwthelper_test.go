package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	signingKey := []byte("test-signing-key")
	userAgent := "browser/1.0"

	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateToken(signingKey, "sid-1", userAgent, time.Hour)
		require.NoError(t, err)

		sid, err := ParseToken(signingKey, token, userAgent)
		require.NoError(t, err)
		assert.Equal(t, "sid-1", sid)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token, err := GenerateToken(signingKey, "sid-1", userAgent, time.Hour)
		require.NoError(t, err)

		_, err = ParseToken([]byte("other-key"), token, userAgent)
		assert.Error(t, err)
	})

	t.Run("user agent mismatch", func(t *testing.T) {
		token, err := GenerateToken(signingKey, "sid-1", userAgent, time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(signingKey, token, "other-agent/2.0")
		assert.ErrorIs(t, err, ErrUserAgentMismatch)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateToken(signingKey, "sid-1", userAgent, -time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(signingKey, token, userAgent)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseToken(signingKey, "not.a.jwt", userAgent)
		assert.Error(t, err)
	})
}
