package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("u-123", "clerk@example.com", "Asha", "Rao")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-123", claims.UserID)
	assert.Equal(t, "clerk@example.com", claims.Email)
	assert.Equal(t, "Asha", claims.FirstName)
	assert.Equal(t, "Rao", claims.LastName)
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT("u-123", "clerk@example.com", "Asha", "Rao")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}
