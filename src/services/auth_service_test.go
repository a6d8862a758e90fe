package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")

	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestLoginRateLimiting(t *testing.T) {
	email := "counselor@example.com"

	t.Run("LimitedAfterMaxFailures", func(t *testing.T) {
		for i := 0; i < maxAttempts; i++ {
			assert.False(t, IsRateLimited(email), "attempt %d should still be allowed", i+1)
			RecordLoginAttempt(email, false)
		}
		assert.True(t, IsRateLimited(email))
		assert.Greater(t, RemainingCooldown(email), time.Duration(0))
	})

	t.Run("EmailMatchingIgnoresCase", func(t *testing.T) {
		assert.True(t, IsRateLimited("Counselor@Example.com"))
	})

	t.Run("SuccessClearsHistory", func(t *testing.T) {
		RecordLoginAttempt(email, true)
		assert.False(t, IsRateLimited(email))
		assert.Zero(t, RemainingCooldown(email))
	})
}
