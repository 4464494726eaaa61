package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/kvstore"
	"github.com/dmitrymomot/storekit/svc/subscription"
)

func newRegistry(t *testing.T, store kvstore.Store) *subscription.Registry {
	t.Helper()
	reg, err := subscription.NewRegistry(context.Background(), store)
	require.NoError(t, err)
	t.Cleanup(reg.Reset)
	return reg
}

func TestRegistry_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("insert grows the list by one", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())

		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "prod-1", Interval: "2"}))

		records := reg.List()
		require.Len(t, records, 1)
		assert.Equal(t, "2", records[0].Interval)
		assert.NotZero(t, records[0].CreatedAt)
	})

	t.Run("missing interval defaults to 1", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())

		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "prod-1"}))

		records := reg.List()
		require.Len(t, records, 1)
		assert.Equal(t, "1", records[0].Interval)
	})

	t.Run("missing id is rejected with no state change", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		reg := newRegistry(t, store)

		err := reg.Upsert(ctx, subscription.Record{Interval: "2"})
		assert.ErrorIs(t, err, subscription.ErrMissingID)
		assert.Equal(t, 0, reg.Len())
		assert.Equal(t, 0, store.Len(), "rejected upsert must not write to storage")
	})

	t.Run("re-upsert replaces interval only", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())

		require.NoError(t, reg.Upsert(ctx, subscription.Record{
			ID: "prod-1", ItemID: "sku-1", DisplayName: "Coffee", Interval: "2",
		}))
		require.NoError(t, reg.Upsert(ctx, subscription.Record{
			ID: "prod-1", DisplayName: "Renamed", Interval: "6",
		}))

		records := reg.List()
		require.Len(t, records, 1)
		assert.Equal(t, "6", records[0].Interval)
		assert.Equal(t, "Coffee", records[0].DisplayName)
		assert.Equal(t, "sku-1", records[0].ItemID)
	})

	t.Run("empty interval on re-upsert retains prior value", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())

		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "prod-1", Interval: "2"}))
		before := reg.Len()
		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "prod-1", Interval: ""}))

		records := reg.List()
		require.Len(t, records, before)
		assert.Equal(t, "2", records[0].Interval)
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())

		for _, id := range []string{"c", "a", "b"} {
			require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: id}))
		}
		// Re-upserting must not reorder
		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "c", Interval: "9"}))

		records := reg.List()
		require.Len(t, records, 3)
		assert.Equal(t, "c", records[0].ID)
		assert.Equal(t, "a", records[1].ID)
		assert.Equal(t, "b", records[2].ID)
	})

	t.Run("created at uses the registry clock", func(t *testing.T) {
		fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		reg, err := subscription.NewRegistry(context.Background(), kvstore.NewMemoryStore(),
			subscription.WithClock(func() time.Time { return fixed }))
		require.NoError(t, err)
		t.Cleanup(reg.Reset)

		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "prod-1"}))
		assert.Equal(t, fixed.UnixMilli(), reg.List()[0].CreatedAt)
	})
}

func TestRegistry_UpdateInterval(t *testing.T) {
	ctx := context.Background()

	t.Run("updates and normalizes", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())
		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "prod-1", Interval: "2"}))

		require.NoError(t, reg.UpdateInterval(ctx, "prod-1", "04"))
		assert.Equal(t, "4", reg.List()[0].Interval)
	})

	t.Run("empty interval falls back to default", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())
		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "prod-1", Interval: "5"}))

		require.NoError(t, reg.UpdateInterval(ctx, "prod-1", ""))
		assert.Equal(t, "1", reg.List()[0].Interval)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		reg := newRegistry(t, store)

		require.NoError(t, reg.UpdateInterval(ctx, "ghost", "3"))
		assert.Equal(t, 0, store.Len())
	})
}

func TestRegistry_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the matching record", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())
		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "a"}))
		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "b"}))

		require.NoError(t, reg.Cancel(ctx, "a"))

		records := reg.List()
		require.Len(t, records, 1)
		assert.Equal(t, "b", records[0].ID)
	})

	t.Run("unknown id leaves the list unchanged", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())
		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "a"}))

		require.NoError(t, reg.Cancel(ctx, "ghost"))
		assert.Equal(t, 1, reg.Len())
	})
}

func TestRegistry_Clear(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	reg := newRegistry(t, store)

	require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "a"}))
	require.NoError(t, reg.Clear(ctx))

	assert.Equal(t, 0, reg.Len())

	data, err := store.Get(ctx, subscription.DefaultStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestRegistry_Persistence(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip through the store", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		reg1 := newRegistry(t, store)
		require.NoError(t, reg1.Upsert(ctx, subscription.Record{ID: "a", ItemID: "sku-a", DisplayName: "A", FileURL: "https://img/a", Interval: "2"}))
		require.NoError(t, reg1.Upsert(ctx, subscription.Record{ID: "b", Interval: "4"}))

		reg2 := newRegistry(t, store)
		assert.Equal(t, reg1.List(), reg2.List())
	})

	t.Run("malformed persisted data starts empty", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set(ctx, subscription.DefaultStorageKey, []byte("{broken")))

		reg := newRegistry(t, store)
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("absent key starts empty", func(t *testing.T) {
		reg := newRegistry(t, kvstore.NewMemoryStore())
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("custom storage key", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		reg, err := subscription.NewRegistry(ctx, store, subscription.WithStorageKey("customer-42"))
		require.NoError(t, err)
		t.Cleanup(reg.Reset)

		require.NoError(t, reg.Upsert(ctx, subscription.Record{ID: "a"}))

		_, err = store.Get(ctx, "customer-42")
		assert.NoError(t, err)
	})

	t.Run("nil store rejected", func(t *testing.T) {
		_, err := subscription.NewRegistry(ctx, nil)
		assert.ErrorIs(t, err, subscription.ErrNilStore)
	})
}
