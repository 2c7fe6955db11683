package service

import (
	"context"
	"time"
)

// IdempotencyStore remembers the result of requests carrying an idempotency key.
type IdempotencyStore interface {
	// Lookup returns the value remembered for key, if any.
	Lookup(ctx context.Context, key string) (value string, found bool, err error)

	// Remember stores value under key for ttl unless the key is already taken.
	// It reports whether the value was stored.
	Remember(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// Forget removes key so a later request can claim it again.
	Forget(ctx context.Context, key string) error

	// Close releases the store's resources.
	Close() error
}
