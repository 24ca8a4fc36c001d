package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", hash)

	assert.True(t, CheckPasswordHash("supersecret", hash))
	assert.False(t, CheckPasswordHash("wrongpassword", hash))
}

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT("session-123", secret, time.Hour)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)

	t.Run("Wrong secret fails", func(t *testing.T) {
		_, err := ParseJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired token fails", func(t *testing.T) {
		expired, err := GenerateJWT("session-123", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(expired, secret)
		assert.Error(t, err)
	})

	t.Run("Garbage token fails", func(t *testing.T) {
		_, err := ParseJWT("not-a-token", secret)
		assert.Error(t, err)
	})
}
