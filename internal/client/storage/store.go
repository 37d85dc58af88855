// Package storage provides the durable key-value store that replaces the
// browser's localStorage: a small credentials table holding the session token
// and the cached user record. The Store interface exists so the session layer
// can be tested against any backend.
package storage

import "context"

// Store is a durable key-value capability.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - Clear removes everything in one step and is idempotent.
//   - SetMany applies all writes atomically: a subsequent Get observes either
//     none or all of them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Clear(ctx context.Context) error
}
