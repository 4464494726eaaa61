package inventory

import "errors"

// Package-specific errors
var (
	// ErrMissingEndpoint is returned when the client is built without an endpoint URL
	ErrMissingEndpoint = errors.New("inventory endpoint URL is required")

	// ErrRequestFailed is returned when the availability request cannot be
	// delivered or the response cannot be read
	ErrRequestFailed = errors.New("inventory check request failed")

	// ErrUnexpectedStatus is returned when the endpoint answers with a
	// non-success HTTP status
	ErrUnexpectedStatus = errors.New("inventory endpoint returned unexpected status")

	// ErrInvalidResponse is returned when the response body cannot be decoded
	ErrInvalidResponse = errors.New("invalid inventory check response")
)
