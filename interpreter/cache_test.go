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

import "testing"

func TestCache_JumpTableFor_ReturnsSameInstanceForSameCode(t *testing.T) {
	cache := NewCache()
	code := []byte{byte(JUMPDEST), byte(STOP)}

	a := cache.jumpTableFor(code)
	b := cache.jumpTableFor(code)
	if a != b {
		t.Errorf("expected repeated lookups for identical code to return the same JumpTable")
	}
}

func TestCache_JumpTableFor_DistinctForDifferentCode(t *testing.T) {
	cache := NewCache()
	a := cache.jumpTableFor([]byte{byte(STOP)})
	b := cache.jumpTableFor([]byte{byte(JUMPDEST)})
	if a == b {
		t.Errorf("expected different code to receive distinct JumpTables")
	}
}

func TestCache_Hash_RoundTrips(t *testing.T) {
	cache := NewCache()
	data := []byte("preimage")
	h := keccak256(data)

	cache.putHash(data, h)
	got, ok := cache.getHash(data)
	if !ok {
		t.Fatalf("expected hash to be present after putHash")
	}
	if got != h {
		t.Errorf("expected round-tripped hash to match")
	}
}

func TestCache_Hash_MissReportsNotOk(t *testing.T) {
	cache := NewCache()
	if _, ok := cache.getHash([]byte("never stored")); ok {
		t.Errorf("expected a miss for data never stored")
	}
}
