package kvstore

import "context"

// Store is a durable key-value mirror for in-memory state.
// Payloads are opaque bytes; callers own their serialization format.
type Store interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound if the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
