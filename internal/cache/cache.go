// Package cache provides a TTL key-value store injected into components that
// need short-lived dedup or one-time keys, replacing process-global maps.
package cache

import (
	"context"
	"time"
)

// Store is a minimal TTL key-value store.
type Store interface {
	// SetNX stores a value only if the key is absent; reports whether the
	// write happened. Used for idempotency keys.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// Get returns the value for a key, or ok=false when absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Delete removes a key.
	Delete(ctx context.Context, key string) error
}
