package cart

import "errors"

var (
	// ErrMissingKey is returned when a line item carries neither a key nor a product id
	ErrMissingKey = errors.New("cart line item key is required")
)
