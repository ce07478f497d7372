// Package persistence mirrors the whitelisted application state (auth +
// theme) into a durable local key-value store and restores it at startup.
// The in-memory stores stay authoritative; the durable copy follows.
package persistence

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the requested key has no stored value.
	ErrNotFound = errors.New("persistence: not found")
)

// KV is the durable local key-value storage the adapter writes through to.
// Implementations must tolerate concurrent callers. Delete is idempotent and
// succeeds when the key is already absent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
