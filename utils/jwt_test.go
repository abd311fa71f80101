package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	ti := NewTokenIssuer("secret", time.Hour)

	token, err := ti.GenerateToken("64f0c2a1e4b0a1b2c3d4e5f6", "user@care.xyz", "admin")
	require.NoError(t, err)

	claims, err := ti.ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c2a1e4b0a1b2c3d4e5f6", claims.Subject)
	assert.Equal(t, "user@care.xyz", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenIssuerRejectsExpiredToken(t *testing.T) {
	ti := NewTokenIssuer("secret", time.Minute)
	ti.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := ti.GenerateToken("u1", "u1@care.xyz", "user")
	require.NoError(t, err)

	_, err = ti.ParseClaims(token)
	assert.Error(t, err)
}

func TestTokenIssuerRejectsForeignSecret(t *testing.T) {
	token, err := NewTokenIssuer("one", time.Hour).GenerateToken("u1", "", "user")
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Hour).ParseClaims(token)
	assert.Error(t, err)
}

func TestTokenIssuerRejectsMissingSubject(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).ParseClaims(token)
	assert.Error(t, err)
}

func TestTokenIssuerEmptySecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour).GenerateToken("u1", "", "user")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
