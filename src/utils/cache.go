package utils

import (
	"sync"
	"time"
)

type Cache[T any] struct {
	value      T
	cachedAt   time.Time
	expiration time.Time
	mutex      sync.RWMutex
}

// NewCache initializes a new cache with an empty value.
func NewCache[T any]() *Cache[T] {
	var zero T
	return &Cache[T]{
		value: zero,
	}
}

// Set sets a new value in the cache with an expiration time.
func (c *Cache[T]) Set(value T, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.value = value
	c.cachedAt = time.Now()
	c.expiration = time.Now().Add(duration)
}

// Get retrieves the cached value if it has not expired.
func (c *Cache[T]) Get() (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if time.Now().After(c.expiration) {
		var zero T
		return zero, false
	}
	return c.value, true
}

// GetStale returns the cached value even past expiration, with the time it
// was cached. Used as a fallback when the upstream source is unavailable.
func (c *Cache[T]) GetStale() (T, time.Time, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.cachedAt.IsZero() {
		var zero T
		return zero, time.Time{}, false
	}
	return c.value, c.cachedAt, true
}

// Clear removes the cached value.
func (c *Cache[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var zero T
	c.value = zero
	c.cachedAt = time.Time{}
	c.expiration = time.Time{}
}
