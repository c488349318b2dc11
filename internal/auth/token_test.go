package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPINHashing(t *testing.T) {
	hash, err := HashPIN("4921")
	require.NoError(t, err)

	assert.True(t, CheckPIN("4921", hash))
	assert.False(t, CheckPIN("0000", hash))
	assert.False(t, CheckPIN("4921", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	t.Run("Valid token", func(t *testing.T) {
		token, err := GenerateToken(secret, RoleManager)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseToken(secret, token)
		require.NoError(t, err)
		assert.Equal(t, RoleManager, claims.Role)
	})

	t.Run("Wrong secret rejected", func(t *testing.T) {
		token, err := GenerateToken(secret, RoleManager)
		require.NoError(t, err)

		_, err = ParseToken("other-secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage rejected", func(t *testing.T) {
		_, err := ParseToken(secret, "garbage.token.here")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Missing secret", func(t *testing.T) {
		_, err := GenerateToken("", RoleManager)
		assert.ErrorIs(t, err, ErrMissingSecret)

		_, err = ParseToken("", "anything")
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}
