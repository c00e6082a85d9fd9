package chat

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

func TestChatJWTRoundTrip(t *testing.T) {
	token, err := GenerateChatJWT(&models.ChatUser{
		UserID:   7,
		Username: "accounts1",
		FullName: "Accounts Clerk",
		Role:     models.RoleAccountant,
	})
	require.NoError(t, err)

	claims, err := validateChatJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "accounts1", claims.Username)
	assert.Equal(t, models.RoleAccountant, claims.Role)
}

func TestChatRejectsBackOfficeToken(t *testing.T) {
	// Both token families sign with the one configured secret, so a
	// back-office token fails chat validation on audience, not signature.
	token, err := auth.GenerateJWT("u-123", "clerk@example.com", "Asha", "Rao")
	require.NoError(t, err)

	_, err = validateChatJWT(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
	assert.NotErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
