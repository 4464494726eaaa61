// Package subscription manages client-persisted recurring-delivery records:
// the registry that owns the canonical in-memory list mirrored to durable
// storage, and the converter that materializes subscriptions from flagged
// cart lines once a checkout is confirmed.
//
// # Registry
//
// The Registry is the only writer of its storage key. It loads persisted
// state once at construction; malformed or absent data starts an empty
// registry rather than failing, because in-memory correctness is primary and
// durability is a best-effort mirror. Every mutation persists the full
// ordered list.
//
//	store := kvstore.NewMemoryStore()
//	reg, _ := subscription.NewRegistry(ctx, store)
//	_ = reg.Upsert(ctx, subscription.Record{ID: "prod-1", Interval: "2"})
//
// # Conversion
//
// The Converter runs strictly after checkout success, exactly once per
// checkout, and is never retried automatically: the user retries the whole
// checkout confirmation, not the conversion step alone.
//
//	local, _ := subscription.NewLocalDispatcher(reg)
//	conv, _ := subscription.NewConverter(local)
//	res := conv.Convert(ctx, cartLines, customerID)
//	if !res.OK {
//		// surface res.Err to the user
//	}
package subscription
