package inventory

import "context"

// Stock is the per-item availability row returned by the upstream endpoint.
type Stock struct {
	ID                string `json:"id"`
	QuantityAvailable int    `json:"quantityavailable"`
}

// Checker answers batch availability questions for item identifiers.
// A successful response is authoritative for the ids it contains; ids absent
// from the response carry no stock data and must not be treated as in stock.
type Checker interface {
	Check(ctx context.Context, ids []string) ([]Stock, error)
}
