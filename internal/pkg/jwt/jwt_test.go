package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateAccessToken("u-1", "An", "an@example.com", "librarian", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "An", claims.Name)
	assert.Equal(t, "librarian", claims.Role)
	assert.Equal(t, "u-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("u-1", "An", "an@example.com", "user", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidate_Expired(t *testing.T) {
	token, err := GenerateAccessToken("u-1", "An", "an@example.com", "user", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := ValidateAccessToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
