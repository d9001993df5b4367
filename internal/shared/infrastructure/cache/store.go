// Package cache holds the byte-oriented stores behind the resource query layer.
package cache

import (
	"context"
	"time"
)

// Store is a key/value cache of encoded values. Keys are grouped by prefix so a
// whole collection can be dropped at once.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}
