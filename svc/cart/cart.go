// Package cart holds the in-memory shopping cart state: an ordered collection
// of line items unique by compound product key, each optionally flagged for
// recurring delivery with a chosen interval in months.
package cart

import "sync"

// LineItem is one entry in the shopping cart.
// Key uniquely identifies the line within the cart; for products with
// variants it is the compound of product id and variant.
type LineItem struct {
	Key       string
	ProductID string
	Variant   string
	Name      string
	ImageURL  string
	Quantity  int
	Subscribe bool   // purchased as a recurring delivery
	Interval  string // months between deliveries, meaningful only when Subscribe is true
}

// LineKey builds the compound cart key for a product and optional variant.
func LineKey(productID, variant string) string {
	if variant == "" {
		return productID
	}
	return productID + ":" + variant
}

// Cart is an ordered collection of line items, at most one per key.
// Zero-quantity lines are removed, never retained.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// SetItem inserts or replaces the line for item.Key.
// An empty key returns ErrMissingKey; a quantity of zero or less removes the
// line instead of storing it.
func (c *Cart) SetItem(item LineItem) error {
	if item.Key == "" {
		item.Key = LineKey(item.ProductID, item.Variant)
	}
	if item.Key == "" {
		return ErrMissingKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if item.Quantity <= 0 {
		c.removeLocked(item.Key)
		return nil
	}

	for i := range c.items {
		if c.items[i].Key == item.Key {
			c.items[i] = item
			return nil
		}
	}
	c.items = append(c.items, item)
	return nil
}

// UpdateQuantity sets the quantity for key. Zero or negative removes the line.
// Unknown keys are a silent no-op.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(key)
		return
	}

	for i := range c.items {
		if c.items[i].Key == key {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line for key. Unknown keys are a silent no-op.
func (c *Cart) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

func (c *Cart) removeLocked(key string) {
	for i := range c.items {
		if c.items[i].Key == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetSubscription flags or unflags the line for recurring delivery.
// The interval is stored as supplied; normalization happens when the line is
// converted into a subscription record. Unknown keys are a silent no-op.
func (c *Cart) SetSubscription(key string, enabled bool, interval string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key == key {
			c.items[i].Subscribe = enabled
			if enabled {
				c.items[i].Interval = interval
			} else {
				c.items[i].Interval = ""
			}
			return
		}
	}
}

// Items returns a copy of all lines in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Flagged returns the lines marked for recurring delivery, in insertion order.
func (c *Cart) Flagged() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []LineItem
	for _, item := range c.items {
		if item.Subscribe {
			out = append(out, item)
		}
	}
	return out
}

// Keys returns the cart keys in insertion order, for batch availability checks.
func (c *Cart) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.items))
	for i, item := range c.items {
		out[i] = item.Key
	}
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
