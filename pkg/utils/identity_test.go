package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims IdentityClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func validClaims() IdentityClaims {
	return IdentityClaims{
		Email:    "alice@example.com",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "sub-123",
			Issuer:    "https://id.example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestParseIdentityToken(t *testing.T) {
	token := sign(t, validClaims(), "secret")

	claims, err := ParseIdentityToken(token, "secret", "https://id.example.com")
	require.NoError(t, err)
	assert.Equal(t, "sub-123", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseIdentityToken_Rejects(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noSubject := validClaims()
	noSubject.Subject = ""

	_, err := ParseIdentityToken(sign(t, validClaims(), "other"), "secret", "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseIdentityToken(sign(t, expired, "secret"), "secret", "")
	assert.ErrorIs(t, err, ErrExpiredToken)

	_, err = ParseIdentityToken(sign(t, validClaims(), "secret"), "secret", "https://evil.example.com")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseIdentityToken(sign(t, noSubject, "secret"), "secret", "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseIdentityToken("not-a-token", "secret", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChannelIDForUser(t *testing.T) {
	a := ChannelIDForUser("sub-123")
	assert.Equal(t, a, ChannelIDForUser("sub-123"))
	assert.NotEqual(t, a, ChannelIDForUser("sub-124"))
	assert.Len(t, a, 36)
}
