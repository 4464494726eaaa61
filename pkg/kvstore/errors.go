package kvstore

import "errors"

// Package-specific errors
var (
	// ErrKeyNotFound is returned when the requested key has never been written
	ErrKeyNotFound = errors.New("key not found in store")

	// ErrEmptyKey is returned when an operation is called with an empty key
	ErrEmptyKey = errors.New("store key cannot be empty")

	// ErrFailedToParseRedisURL is returned when the Redis connection URL is invalid
	ErrFailedToParseRedisURL = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned when the Redis server cannot be reached
	// within the configured retry budget
	ErrRedisNotReady = errors.New("redis server is not ready")

	// ErrFailedToWrite is returned when persisting a value fails
	ErrFailedToWrite = errors.New("failed to write value to store")

	// ErrFailedToRead is returned when reading a value fails for reasons other
	// than the key being absent
	ErrFailedToRead = errors.New("failed to read value from store")
)
