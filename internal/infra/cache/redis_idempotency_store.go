// Package cache remembers upload idempotency keys in Redis or in process memory.
package cache

import (
	"context"
	"time"

	"photoverify/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "photoverify:idempotency:"

// redisIdempotencyStore shares idempotency keys between API instances.
type redisIdempotencyStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisIdempotencyStore creates a store on an existing Redis client.
func NewRedisIdempotencyStore(client *redis.Client, keyPrefix string) service.IdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &redisIdempotencyStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (s *redisIdempotencyStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "failed to look up idempotency key")
	}

	return value, true, nil
}

// Remember uses SETNX so the first request holding the key wins.
func (s *redisIdempotencyStore) Remember(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	stored, err := s.client.SetNX(ctx, s.keyPrefix+key, value, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to remember idempotency key")
	}

	return stored, nil
}

func (s *redisIdempotencyStore) Forget(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to forget idempotency key")
	}

	return nil
}

func (s *redisIdempotencyStore) Close() error {
	return s.client.Close()
}
