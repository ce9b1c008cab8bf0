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
	"testing"

	"github.com/holiman/uint256"
)

func newTestContext() *Context {
	return &Context{stack: NewStack(), gas: NewGasMeter(1_000_000)}
}

func TestOpAdd_AddsTopTwoElements(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(3))
	c.stack.Push(uint256.NewInt(4))

	if err := opAdd(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint64(7), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected %d, got %d", want, got)
	}
	if want, got := 1, c.stack.Len(); want != got {
		t.Errorf("expected stack length %d, got %d", want, got)
	}
}

func TestOpSub_SubtractsInPoppedOrder(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(10)) // b
	c.stack.Push(uint256.NewInt(3))  // a (top)

	if err := opSub(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// EVM SUB computes a - b where a is the top of stack: 3 - 10, which
	// wraps modulo 2^256.
	want := new(uint256.Int).Sub(uint256.NewInt(3), uint256.NewInt(10))
	if got := c.stack.Peek(); want.Cmp(got) != 0 {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestOpDiv_ByZeroYieldsZero(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(0)) // divisor
	c.stack.Push(uint256.NewInt(5)) // dividend (top)

	if err := opDiv(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint64(0), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestOpAddMod_ModulusZeroYieldsZero(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(0)) // modulus
	c.stack.Push(uint256.NewInt(3)) // y
	c.stack.Push(uint256.NewInt(5)) // x (top)

	if err := opAddMod(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint64(0), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestOpAddMod_ComputesSumModulo(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(7)) // modulus
	c.stack.Push(uint256.NewInt(3)) // y
	c.stack.Push(uint256.NewInt(5)) // x (top)

	if err := opAddMod(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint64((5+3)%7), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestOpExp_RaisesBaseToExponent(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(3)) // exponent
	c.stack.Push(uint256.NewInt(2)) // base (top)

	if err := opExp(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint64(8), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected 2**3=8, got %d", got)
	}
}

func TestOpSignExtend_ExtendsNegativeByte(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(0xff)) // value: byte 0xff, negative as int8
	c.stack.Push(uint256.NewInt(0))    // byte index 0 (top)

	if err := opSignExtend(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := new(uint256.Int).Not(uint256.NewInt(0)) // all-ones (-1)
	if got := c.stack.Peek(); want.Cmp(got) != 0 {
		t.Errorf("expected all-ones, got %d", got)
	}
}
