// Package fleet implements the console's monitoring core: the per-key fetch
// caches, the bot roster view, the indicator and trade-history synchronizers,
// and the pure recommendation synthesis.
package fleet

import (
	"sync"
	"time"
)

// CacheStatus is the lifecycle state of one cache entry.
type CacheStatus string

const (
	StatusIdle    CacheStatus = "idle"
	StatusLoading CacheStatus = "loading"
	StatusLoaded  CacheStatus = "loaded"
	StatusError   CacheStatus = "error"
)

// CacheEntry is a snapshot of one key's state. Value is meaningful only when
// Status is StatusLoaded; Err only when Status is StatusError.
type CacheEntry[V any] struct {
	Status    CacheStatus
	Value     V
	Err       error
	FetchedAt time.Time
}

// EntityCache is a per-key fetch cache with idle/loading/loaded/error
// states. A key transitions to loading atomically before its fetcher runs,
// so concurrent Ensure calls for the same key issue at most one request.
// Entries are never evicted and never expire; loaded and error states stick
// until Invalidate or Reset. Completions apply last-writer-wins: there is no
// request generation counter, so a slow response can overwrite a newer one
// when a key is invalidated and re-fetched mid-flight.
type EntityCache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*CacheEntry[V]
}

// NewEntityCache constructs an empty cache.
func NewEntityCache[K comparable, V any]() *EntityCache[K, V] {
	return &EntityCache[K, V]{entries: make(map[K]*CacheEntry[V])}
}

// Get returns the current state for key without blocking. Unknown keys read
// as idle.
func (c *EntityCache[K, V]) Get(key K) CacheEntry[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		return *entry
	}
	return CacheEntry[V]{Status: StatusIdle}
}

// Ensure fetches key if and only if it is idle. Loading, loaded and error
// entries are left untouched, which makes repeated synchronization passes
// free and keeps a prior error sticky until explicitly invalidated. The
// fetcher runs in the calling goroutine; other callers observing the loading
// state return immediately.
func (c *EntityCache[K, V]) Ensure(key K, fetch func() (V, error)) {
	if !c.begin(key) {
		return
	}
	value, err := fetch()
	c.complete(key, value, err)
}

// begin transitions an idle key to loading and reports whether this caller
// owns the fetch.
func (c *EntityCache[K, V]) begin(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if ok && entry.Status != StatusIdle {
		return false
	}
	c.entries[key] = &CacheEntry[V]{Status: StatusLoading}
	return true
}

// complete records a fetch result, last writer wins.
func (c *EntityCache[K, V]) complete(key K, value V, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.entries[key] = &CacheEntry[V]{Status: StatusError, Err: err, FetchedAt: time.Now()}
		return
	}
	c.entries[key] = &CacheEntry[V]{Status: StatusLoaded, Value: value, FetchedAt: time.Now()}
}

// Invalidate resets one key to idle so the next Ensure re-fetches it. This is
// the only way out of a sticky error state.
func (c *EntityCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Reset drops every entry.
func (c *EntityCache[K, V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*CacheEntry[V])
}

// Len returns the number of tracked keys.
func (c *EntityCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
