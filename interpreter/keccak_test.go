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
	"bytes"
	"testing"
)

func TestKeccak256_EmptyInputMatchesKnownDigest(t *testing.T) {
	got := keccak256(nil)
	if !bytes.Equal(got[:], emptyKeccak256[:]) {
		t.Errorf("expected precomputed empty-input digest to match computed one")
	}
}

func TestKeccak256_IsDeterministic(t *testing.T) {
	data := []byte("the quick brown fox")
	a := keccak256(data)
	b := keccak256(data)
	if a != b {
		t.Errorf("expected repeated hashing of the same input to be identical")
	}
}

func TestKeccak256_DifferentInputsDifferentDigests(t *testing.T) {
	a := keccak256([]byte("a"))
	b := keccak256([]byte("b"))
	if a == b {
		t.Errorf("expected different inputs to hash to different digests")
	}
}

func TestContext_Keccak256_UsesCacheWhenConfigured(t *testing.T) {
	cache := NewCache()
	c := &Context{cache: cache}

	data := []byte("cached data")
	first := c.keccak256(data)
	if _, ok := cache.getHash(data); !ok {
		t.Fatalf("expected hash to be populated into the cache after first use")
	}
	second := c.keccak256(data)
	if first != second {
		t.Errorf("expected cached hash to match freshly computed hash")
	}
}
