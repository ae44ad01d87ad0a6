package utils

import (
	"testing"
	"time"

	"charity/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, &models.UserClaims{UserID: 7, Email: "a@x.com", Role: models.RoleAdmin, TokenVersion: 3})
	require.NoError(t, err)

	_, claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "7", claims.Subject)

	_, _, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", -time.Minute, &models.UserClaims{UserID: 1})
	require.NoError(t, err)

	_, _, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	_, err := GenerateToken("", time.Hour, &models.UserClaims{UserID: 1})
	assert.ErrorIs(t, err, ErrJWTSecretMissing)
}
