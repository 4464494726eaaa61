// Package recent provides a bounded most-recently-used list for tracking
// things like recently viewed products.
//
// The list is ordered newest-first, deduplicates by key, and evicts from the
// tail once it grows past its capacity. Re-adding an existing key moves it to
// the front and replaces its payload with the newly supplied one.
//
// Push is a pure function over a slice for callers that own their own state;
// Tracker wraps the same behavior in a small thread-safe container.
//
// Usage:
//
//	list := []Product{}
//	list = recent.Push(list, p, func(p Product) string { return p.ID }, recent.DefaultCapacity)
//
//	tracker := recent.NewTracker(func(p Product) string { return p.ID }, 10)
//	tracker.Add(p)
//	for _, p := range tracker.Items() { ... }
package recent
