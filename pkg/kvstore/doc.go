// Package kvstore provides a minimal durable key-value store abstraction used
// to mirror in-memory state to persistent storage.
//
// The package exposes a single Store interface with three implementations:
//
//   - MemoryStore: map-backed, for tests and ephemeral environments
//   - FileStore: one JSON document per key on the local filesystem, written
//     atomically via a temp file and rename
//   - RedisStore: backed by a Redis server, for deployments that already run
//     Redis
//
// Stores hold opaque byte payloads; callers own serialization. A missing key
// is reported with ErrKeyNotFound so callers can distinguish "never written"
// from a transport failure.
//
// Usage:
//
//	store, err := kvstore.NewFileStore(dir)
//	if err != nil {
//		// handle error
//	}
//
//	if err := store.Set(ctx, "subscriptions", payload); err != nil {
//		// handle error
//	}
//
//	data, err := store.Get(ctx, "subscriptions")
//	if errors.Is(err, kvstore.ErrKeyNotFound) {
//		// start from empty state
//	}
package kvstore
