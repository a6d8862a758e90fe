package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-EduPredict/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const overviewCacheKey = "dashboard:overview"

// ensureClient returns the shared Redis client managed by the database
// package. A nil client means Redis is not configured (development mode)
// and every helper degrades to a no-op.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken voids an access token until its natural expiry (logout).
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether a token was voided by logout.
// Without Redis there is no blacklist and every token passes.
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if _, err := client.Get(Ctx, key).Result(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

// CacheOverview stores the serialized dashboard overview for a short TTL.
// Aggregation reads tolerate eventual consistency across a refresh.
func CacheOverview(payload []byte, ttl time.Duration) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Set(Ctx, overviewCacheKey, payload, ttl)
}

// CachedOverview returns the cached overview payload, or nil on miss.
func CachedOverview() []byte {
	client := ensureClient()
	if client == nil {
		return nil
	}
	payload, err := client.Get(Ctx, overviewCacheKey).Bytes()
	if err != nil {
		return nil
	}
	return payload
}

// InvalidateOverviewCache drops the cached overview after any write that
// changes the scored population.
func InvalidateOverviewCache() {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, overviewCacheKey)
}
