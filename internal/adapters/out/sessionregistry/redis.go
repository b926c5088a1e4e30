// Package sessionregistry provides session tracking backends used to revoke
// API tokens before they expire. The Redis implementation is the production
// backend; the in-memory one serves tests and single-node deployments.
package sessionregistry

import (
	"context"
	"errors"
	"time"

	"printmarket/internal/core/domain/model/kernel"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// RedisSessionRegistry implements ports.SessionRegistry on Redis. Sessions
// expire automatically via key TTLs, so revocation is the only explicit
// cleanup needed.
type RedisSessionRegistry struct {
	client *redis.Client
}

// NewRedisSessionRegistry creates a session registry over the given client.
func NewRedisSessionRegistry(client *redis.Client) *RedisSessionRegistry {
	return &RedisSessionRegistry{client: client}
}

// Register records a session with the token's remaining lifetime.
func (r *RedisSessionRegistry) Register(
	ctx context.Context,
	participantID kernel.UUID,
	tokenID string,
	ttl time.Duration,
) error {
	return r.client.Set(ctx, sessionKeyPrefix+tokenID, participantID.String(), ttl).Err()
}

// IsActive reports whether the session is still registered.
func (r *RedisSessionRegistry) IsActive(ctx context.Context, tokenID string) (bool, error) {
	_, err := r.client.Get(ctx, sessionKeyPrefix+tokenID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Revoke removes the session, invalidating its token immediately.
func (r *RedisSessionRegistry) Revoke(ctx context.Context, tokenID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+tokenID).Err()
}
