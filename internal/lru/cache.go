// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package lru provides a fixed-capacity, least-recently-used cache used by
// the interpreter's optional SHA3 hash cache and jump-analysis cache. It is
// a thin, generic wrapper around hashicorp/golang-lru rather than a
// reimplementation, so eviction ordering and capacity accounting follow
// that library's well-exercised behaviour.
package lru

import (
	hashicorplru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a fixed-capacity LRU cache mapping K to V. The zero value is
// not usable; construct one with New. A Cache is safe for concurrent use.
type Cache[K comparable, V any] struct {
	inner *hashicorplru.Cache[K, V]
}

// New creates a Cache holding at most size entries. It panics if size is
// not positive, matching the underlying library's contract.
func New[K comparable, V any](size int) *Cache[K, V] {
	c, err := hashicorplru.New[K, V](size)
	if err != nil {
		panic(err)
	}
	return &Cache[K, V]{inner: c}
}

// Get returns the value stored for key and whether it was present. A hit
// marks key as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.inner.Get(key)
}

// InsertOrAssign stores value for key, evicting the least recently used
// entry first if the cache is already at capacity. It reports whether an
// eviction occurred.
func (c *Cache[K, V]) InsertOrAssign(key K, value V) (evicted bool) {
	return c.inner.Add(key, value)
}

// GetOrInsert returns the existing value for key if present; otherwise it
// calls compute, stores the result, and returns it. compute is not called
// under the cache's lock, so it may itself recurse into an unrelated
// Cache, but concurrent callers may both compute the same missing key.
func (c *Cache[K, V]) GetOrInsert(key K, compute func() V) V {
	if v, ok := c.inner.Get(key); ok {
		return v
	}
	v := compute()
	c.inner.Add(key, v)
	return v
}

// Clear removes every entry from the cache.
func (c *Cache[K, V]) Clear() {
	c.inner.Purge()
}

// Len returns the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	return c.inner.Len()
}
