// Package kv defines the key-value contract the engine's collaborators
// persist through. The engine never depends on a concrete store; anything
// that can round-trip opaque strings by key satisfies it.
package kv

import "time"

// Store is a key-value store with optional per-key expiry
type Store interface {
	// Get returns the value for the key, or false if the key is missing
	// or expired
	Get(key string) (string, bool)

	// Set stores a value with no expiry
	Set(key, value string)

	// SetTTL stores a value that expires after ttl
	SetTTL(key, value string, ttl time.Duration)

	// IncrBy atomically adds delta to the integer stored at key and returns
	// the new value. A missing or non-integer value counts as zero.
	IncrBy(key string, delta int) int

	// Delete removes the key
	Delete(key string)
}
