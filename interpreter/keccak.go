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
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Hash256 is a 32-byte Keccak-256 digest.
type Hash256 [32]byte

var hasherPool = sync.Pool{
	New: func() any { return sha3.NewLegacyKeccak256() },
}

// keccak256 hashes data with Keccak-256, consulting and populating c's
// Cache first if one is configured. This is the implementation of the
// SHA3 opcode, which despite its mnemonic uses the pre-standardisation
// Keccak padding rather than NIST SHA3-256.
func (c *Context) keccak256(data []byte) Hash256 {
	if c.cache != nil {
		if h, ok := c.cache.getHash(data); ok {
			return h
		}
	}
	h := keccak256(data)
	if c.cache != nil {
		c.cache.putHash(data, h)
	}
	return h
}

func keccak256(data []byte) Hash256 {
	if len(data) == 0 {
		return emptyKeccak256
	}
	hasher := hasherPool.Get().(hash.Hash)
	defer func() {
		hasher.Reset()
		hasherPool.Put(hasher)
	}()
	hasher.Write(data)
	var out Hash256
	copy(out[:], hasher.Sum(nil))
	return out
}

// emptyKeccak256 is the Keccak-256 hash of the empty byte string,
// precomputed since SHA3(0,0) over empty call data or memory is common
// enough in practice to be worth skipping the hasher pool for.
var emptyKeccak256 = Hash256{
	0xc5, 0xd2, 0x46, 0x01, 0x86, 0xf7, 0x23, 0x3c, 0x92, 0x7e, 0x7d, 0xb2, 0xdc, 0xc7, 0x03, 0xc0,
	0xe5, 0x00, 0xb6, 0x53, 0xca, 0x82, 0x27, 0x3b, 0x7b, 0xfa, 0xd8, 0x04, 0x5d, 0x85, 0xa4, 0x70,
}
