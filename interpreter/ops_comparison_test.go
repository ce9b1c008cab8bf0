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

func TestOpLt_ComparesPoppedOrder(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(10)) // y
	c.stack.Push(uint256.NewInt(3))  // x (top)

	if err := opLt(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// EVM LT tests x < y where x is the top of stack: 3 < 10 is true.
	if want, got := uint64(1), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestOpGt_ComparesPoppedOrder(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(10)) // y
	c.stack.Push(uint256.NewInt(3))  // x (top)

	if err := opGt(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 > 10 is false.
	if !c.stack.Peek().IsZero() {
		t.Errorf("expected 0 (false)")
	}
}

func TestOpSlt_TreatsOperandsAsSigned(t *testing.T) {
	c := newTestContext()
	negOne := new(uint256.Int).Not(uint256.NewInt(0)) // -1
	c.stack.Push(uint256.NewInt(0))                    // y
	c.stack.Push(negOne)                               // x (top)

	if err := opSlt(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// -1 < 0 is true under signed comparison.
	if want, got := uint64(1), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestOpSgt_TreatsOperandsAsSigned(t *testing.T) {
	c := newTestContext()
	negOne := new(uint256.Int).Not(uint256.NewInt(0)) // -1
	c.stack.Push(negOne)             // y
	c.stack.Push(uint256.NewInt(0))  // x (top)

	if err := opSgt(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0 > -1 is true under signed comparison.
	if want, got := uint64(1), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestOpEq_ReportsEquality(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(7))
	c.stack.Push(uint256.NewInt(7))

	if err := opEq(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint64(1), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestOpIsZero_TestsTopOfStackInPlace(t *testing.T) {
	c := newTestContext()
	c.stack.Push(uint256.NewInt(0))

	if err := opIsZero(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint64(1), c.stack.Peek().Uint64(); want != got {
		t.Errorf("expected %d, got %d", want, got)
	}
}
