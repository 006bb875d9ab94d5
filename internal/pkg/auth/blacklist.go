package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist records revoked token IDs (jti) until the token would have expired anyway
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisTokenBlacklist stores revoked token IDs in Redis with a TTL
type RedisTokenBlacklist struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisTokenBlacklist creates a token blacklist on an existing Redis client
func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "alumnet:token:revoked:",
	}
}

// Revoke blacklists jti for ttl. Non-positive TTLs are a no-op since the token already expired.
func (b *RedisTokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, b.keyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked checks whether jti has been blacklisted
func (b *RedisTokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, b.keyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}

// MemoryTokenBlacklist is the single-process blacklist used when Redis is disabled
type MemoryTokenBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryTokenBlacklist creates an empty in-memory blacklist
func NewMemoryTokenBlacklist() *MemoryTokenBlacklist {
	return &MemoryTokenBlacklist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke blacklists jti for ttl
func (b *MemoryTokenBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	for k, exp := range b.entries {
		if !exp.After(now) {
			delete(b.entries, k)
		}
	}
	b.entries[jti] = now.Add(ttl)
	return nil
}

// IsRevoked checks whether jti has been blacklisted and has not yet lapsed
func (b *MemoryTokenBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	exp, ok := b.entries[jti]
	return ok && exp.After(b.now()), nil
}
