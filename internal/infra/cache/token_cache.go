// Package cache provides the optional Redis lookup cache that sits in
// front of the user store for bearer-token resolution.
package cache

import (
	"context"
	"time"

	"thoughts/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenCache keeps token -> user id mappings in Redis with a TTL. Tokens
// are static credentials, so entries never need invalidation; the TTL only
// bounds memory. A cache miss falls through to the user store.
type TokenCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenCache builds a Redis-backed token cache.
func NewTokenCache(addr, password string, ttl time.Duration) *TokenCache {
	return &TokenCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

// Lookup resolves a token to a user id. The second return value is false on
// a cache miss.
func (c *TokenCache) Lookup(ctx context.Context, token string) (uuid.UUID, bool, error) {
	val, err := c.client.Get(ctx, cacheKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, errors.Wrap(err, "failed to look up token in cache")
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		// A corrupt entry behaves like a miss; the store lookup will
		// overwrite it.
		return uuid.Nil, false, nil
	}

	return userID, true, nil
}

// Store writes a token -> user id mapping with the configured TTL.
func (c *TokenCache) Store(ctx context.Context, token string, userID uuid.UUID) error {
	if err := c.client.Set(ctx, cacheKey(token), userID.String(), c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store token in cache")
	}

	return nil
}

// Close releases the underlying Redis connection.
func (c *TokenCache) Close() error {
	return errors.Wrap(c.client.Close(), "failed to close token cache client")
}

func cacheKey(token string) string {
	return "token:" + token
}
