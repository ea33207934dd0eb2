// Package cache is a time-windowed key/value store for rendered pages.
package cache

import (
	"context"
	"time"
)

// Store keeps byte values for a fixed time window.
// Implementations fail open: a backend error is a miss, never a request failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// InvalidatePrefix drops every key starting with prefix; "" clears the store.
	InvalidatePrefix(ctx context.Context, prefix string)
}

// defaultTTL applies when Set is called with a non-positive ttl.
const defaultTTL = time.Hour
