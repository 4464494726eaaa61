package subscription

import "errors"

// Package-specific errors
var (
	// ErrMissingID is returned when an upsert carries no record identifier.
	// The operation is a no-op; no state changes.
	ErrMissingID = errors.New("subscription record id is required")

	// ErrNilStore is returned when a registry is constructed without a store
	ErrNilStore = errors.New("subscription registry requires a store")

	// ErrNilDispatcher indicates the converter was wired without a dispatch
	// channel. This is an integration defect, not a runtime condition, and
	// must not be retried.
	ErrNilDispatcher = errors.New("conversion dispatcher is required")

	// ErrNilRegistry is returned when a local dispatcher is built without a registry
	ErrNilRegistry = errors.New("local dispatcher requires a registry")

	// ErrBatchRejected is returned when the batched subscription-creation
	// call reports rejection. The caller may retry the whole checkout flow.
	ErrBatchRejected = errors.New("subscription batch was rejected")

	// ErrFailedToPersist is returned when mirroring the registry to durable
	// storage fails. The in-memory mutation stands; the mirror is best-effort.
	ErrFailedToPersist = errors.New("failed to persist subscription list")

	// ErrMissingToken is returned when the credential provider yields an empty token
	ErrMissingToken = errors.New("credential provider returned an empty token")
)
