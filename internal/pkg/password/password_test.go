package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashWithCost("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, Verify("correct horse", hash))
	assert.False(t, Verify("wrong horse", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword("12345"))
	assert.True(t, ValidatePassword("123456"))
}
