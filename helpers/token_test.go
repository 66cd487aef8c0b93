package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetJWTKey("test-signing-key")

	access, refresh := GenerateTokens("user@example.com", "abc123", "USER")
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "abc123", claims.UserID)
	assert.Equal(t, "USER", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetJWTKey("test-signing-key")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	SetJWTKey("key-one")
	access, _ := GenerateTokens("user@example.com", "abc123", "USER")

	SetJWTKey("key-two")
	_, err := ValidateToken(access)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	pwd := "s3cret-pass"
	hashed := HashPassword(&pwd)
	require.NotNil(t, hashed)
	require.NotEqual(t, pwd, *hashed)

	ok, _ := VerifyPassword(*hashed, pwd)
	assert.True(t, ok)

	ok, _ = VerifyPassword(*hashed, "wrong")
	assert.False(t, ok)
}

func TestGenerateResetToken(t *testing.T) {
	a, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
