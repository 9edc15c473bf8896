package common

import "time"

// CacheInterface is the read-through contract shared by the in-memory and
// Redis backends. The flight and airport list endpoints serve their
// unfiltered queries through it, keyed by the list-cache prefixes in
// constants; seat mutations and airport imports invalidate those keys.
type CacheInterface interface {
	// Set stores value under key for the given TTL.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the cached value and whether the key was present.
	Get(key string) (interface{}, bool)

	// Delete drops key. Absent keys are a no-op.
	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its
	// result. Loader errors are returned and never cached.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases backend connections where the backend holds any.
	Close() error
}
