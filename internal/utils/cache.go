package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // String conversion
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// InvalidateUserCache drops the cached wallet and invalidates every cached
// round-up history page for a user after their balances change. History
// entries carry a per-user version in their key, so bumping the version
// orphans all of them at once regardless of page or page size; the orphaned
// entries expire with their TTL.
func InvalidateUserCache(ctx context.Context, rdb *redis.Client, publicID string) {
	_ = DeleteCache(ctx, rdb, WalletCacheKey(publicID))         // Invalidate wallet cache
	_ = rdb.Incr(ctx, roundupHistoryVersionKey(publicID)).Err() // Orphan all history pages
}

// WalletCacheKey builds the wallet cache key for a user
func WalletCacheKey(publicID string) string {
	return "wallet:user:" + publicID
}

// roundupHistoryVersionKey builds the per-user history version key
func roundupHistoryVersionKey(publicID string) string {
	return "roundups:user:" + publicID + ":version"
}

// RoundupHistoryVersion returns the user's current history cache version.
// A user who has never been invalidated is at version 0; Redis failures also
// report 0 so reads degrade to cache misses rather than errors.
func RoundupHistoryVersion(ctx context.Context, rdb *redis.Client, publicID string) int64 {
	v, err := rdb.Get(ctx, roundupHistoryVersionKey(publicID)).Int64()
	if err != nil {
		return 0 // Missing key or Redis failure
	}
	return v
}

// RoundupHistoryCacheKey builds the round-up history cache key for a user page
// at a given cache version
func RoundupHistoryCacheKey(publicID string, version int64, page, pageSize int) string {
	return "roundups:user:" + publicID +
		":v:" + strconv.FormatInt(version, 10) +
		":page:" + strconv.Itoa(page) +
		":size:" + strconv.Itoa(pageSize)
}
