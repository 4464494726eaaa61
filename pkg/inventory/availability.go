package inventory

import (
	"context"
	"sync"
)

// Availability is the caller-side view of the most recent successful check.
// Ids absent from the last response are unknown and report as out of stock;
// a failed refresh clears all prior state so stale availability is never
// shown as current.
type Availability struct {
	mu     sync.RWMutex
	levels map[string]int
}

// NewAvailability creates an empty availability view.
func NewAvailability() *Availability {
	return &Availability{
		levels: make(map[string]int),
	}
}

// Refresh runs one availability check and replaces the view with its result.
// On any error the view is cleared and the error is returned for the caller
// to surface.
func (a *Availability) Refresh(ctx context.Context, checker Checker, ids []string) error {
	stocks, err := checker.Check(ctx, ids)
	if err != nil {
		a.Clear()
		return err
	}

	a.Apply(stocks)
	return nil
}

// Apply replaces the view with the given stock rows.
func (a *Availability) Apply(stocks []Stock) {
	levels := make(map[string]int, len(stocks))
	for _, s := range stocks {
		levels[s.ID] = s.QuantityAvailable
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.levels = levels
}

// Clear drops all recorded availability.
func (a *Availability) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.levels = make(map[string]int)
}

// Quantity returns the available quantity for id and whether the last check
// reported it at all.
func (a *Availability) Quantity(id string) (int, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	qty, ok := a.levels[id]
	return qty, ok
}

// InStock reports whether id was present in the last response with a positive
// quantity. Unknown ids are never in stock.
func (a *Availability) InStock(id string) bool {
	qty, ok := a.Quantity(id)
	return ok && qty > 0
}
