// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package interpreter

import (
	"github.com/fantom-foundation/levm/internal/lru"
)

// defaultCacheSize is the entry capacity given to a Cache created with
// NewCache. Both the hash cache and the jump-analysis cache use it.
const defaultCacheSize = 4096

// Cache is an optional, shared, concurrency-safe cache that Interpret
// consults to avoid repeating two bounded-but-nonzero-cost computations
// across calls that reuse the same code: Keccak-256 hashing of SHA3
// preimages, and jump-destination analysis. Supplying a Cache never
// changes what Interpret returns, only how much work it repeats; a nil
// Cache is a valid, fully functional configuration.
type Cache struct {
	hashes     *lru.Cache[string, Hash256]
	jumpTables *lru.Cache[string, *JumpTable]
}

// NewCache creates a Cache with room for defaultCacheSize entries in each
// of its two internal tables.
func NewCache() *Cache {
	return &Cache{
		hashes:     lru.New[string, Hash256](defaultCacheSize),
		jumpTables: lru.New[string, *JumpTable](defaultCacheSize),
	}
}

func (c *Cache) getHash(data []byte) (Hash256, bool) {
	return c.hashes.Get(string(data))
}

func (c *Cache) putHash(data []byte, h Hash256) {
	c.hashes.InsertOrAssign(string(data), h)
}

// jumpTableFor returns the cached JumpTable for code, creating one on
// first use. The JumpTable itself still performs its analysis lazily and
// incrementally; caching it across Interpret calls lets that analysis
// accumulate instead of restarting from scratch each time the same code
// runs.
func (c *Cache) jumpTableFor(code []byte) *JumpTable {
	return c.jumpTables.GetOrInsert(string(code), func() *JumpTable {
		return NewJumpTable(code)
	})
}
