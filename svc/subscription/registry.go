package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/storekit/pkg/kvstore"
	"github.com/dmitrymomot/storekit/pkg/logger"
)

// DefaultStorageKey is the store key holding the JSON-encoded record list.
const DefaultStorageKey = "subscriptions"

// Registry owns the canonical in-memory subscription list and mirrors it to a
// durable store after every mutation. The store is read exactly once, at
// construction; all later reads go through the in-memory list.
type Registry struct {
	mu      sync.Mutex
	records []Record

	store kvstore.Store
	key   string
	log   *slog.Logger
	now   func() time.Time
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithStorageKey overrides the store key, ignoring empty values.
func WithStorageKey(key string) RegistryOption {
	return func(r *Registry) {
		if key != "" {
			r.key = key
		}
	}
}

// WithLogger sets the registry logger, ignoring nil for safety.
func WithLogger(log *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// WithClock overrides the time source. Intended for tests that assert on
// CreatedAt values.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistry creates a registry backed by store and loads any persisted
// records. Absent or malformed persisted data starts the registry empty;
// construction fails only on wiring defects, never on bad stored bytes.
func NewRegistry(ctx context.Context, store kvstore.Store, opts ...RegistryOption) (*Registry, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	r := &Registry{
		store: store,
		key:   DefaultStorageKey,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	data, err := store.Get(ctx, r.key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			r.log.WarnContext(ctx, "failed to read persisted subscriptions, starting empty",
				logger.Component("subscription.registry"), logger.Error(err))
		}
		return r, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		r.log.WarnContext(ctx, "malformed persisted subscriptions, starting empty",
			logger.Component("subscription.registry"), logger.Error(err))
		return r, nil
	}

	r.records = records
	return r, nil
}

// Upsert inserts or updates the record for rec.ID and persists the list.
// A missing id returns ErrMissingID with no state change. When the id already
// exists only the interval is replaced, and an empty supplied interval
// retains the prior one. New records get CreatedAt from the registry clock
// and an interval normalized to DefaultInterval when absent.
func (r *Registry) Upsert(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == rec.ID {
			if strings.TrimSpace(rec.Interval) != "" {
				r.records[i].Interval = NormalizeInterval(rec.Interval)
			}
			return r.persistLocked(ctx)
		}
	}

	rec.Interval = NormalizeInterval(rec.Interval)
	rec.CreatedAt = r.now().UnixMilli()
	r.records = append(r.records, rec)
	return r.persistLocked(ctx)
}

// UpdateInterval sets the delivery interval for id and persists the list.
// Unknown ids are a silent no-op; an empty supplied interval falls back to
// DefaultInterval.
func (r *Registry) UpdateInterval(ctx context.Context, id, interval string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].Interval = NormalizeInterval(interval)
			return r.persistLocked(ctx)
		}
	}
	return nil
}

// Cancel removes the record for id and persists the list.
// Unknown ids are a silent no-op.
func (r *Registry) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return r.persistLocked(ctx)
		}
	}
	return nil
}

// Clear empties the registry and persists the empty list.
func (r *Registry) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = nil
	return r.persistLocked(ctx)
}

// List returns a copy of all records in insertion order.
func (r *Registry) List() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset drops the in-memory state without touching the store.
// Intended as test teardown so no state leaks between cases.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}

// persistLocked mirrors the full record list to the store.
// The in-memory mutation stands even when the mirror write fails; durability
// is best-effort, in-memory correctness is primary.
func (r *Registry) persistLocked(ctx context.Context) error {
	records := r.records
	if records == nil {
		// Persist an empty array, not JSON null
		records = []Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.Join(ErrFailedToPersist, err)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		r.log.ErrorContext(ctx, "failed to persist subscription list",
			logger.Component("subscription.registry"), logger.Error(err))
		return errors.Join(ErrFailedToPersist, err)
	}
	return nil
}
