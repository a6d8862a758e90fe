package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "counselor@example.com", "Counselor")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "counselor@example.com", claims.Email)
	assert.Equal(t, "Counselor", claims.Role)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateJWT("user-1", "counselor@example.com", "Admin")
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}
