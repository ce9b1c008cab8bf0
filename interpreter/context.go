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

import "github.com/fantom-foundation/levm/internal/allocator"

// Args bundles everything a single Interpret call needs: the code to run,
// the call's input data, and the gas budget available. There is
// deliberately no block or transaction context and no account/storage
// binding; opcodes that would require one are not implemented by this
// core.
type Args struct {
	Code  []byte
	Input []byte
	Gas   Gas

	// Cache, if non-nil, is consulted and populated for SHA3 hashing and
	// for jump-destination analysis across repeated Interpret calls over
	// the same code. It is entirely optional; a nil Cache simply disables
	// reuse across calls without changing observable results.
	Cache *Cache

	// Allocator, if non-nil, supplies the byte buffers backing memory
	// expansion. A nil Allocator uses allocator.Default (Go's own
	// allocator); embedders that bundle a native allocator-replacement
	// shim can supply their own without changing any opcode's semantics.
	Allocator allocator.Allocator
}

// Result is the outcome of a single Interpret call.
type Result struct {
	State   State
	GasLeft Gas

	// ReturnData is the byte sequence supplied to RETURN or REVERT. Neither
	// opcode is implemented by this core, so ReturnData is always nil; the
	// field exists so Result's shape matches the external interface every
	// opcode handler's Context carries it for.
	ReturnData []byte

	// StackSize and MemorySize are reported for diagnostics and testing;
	// they are not part of any opcode's observable effect.
	StackSize  int
	MemorySize uint64
}

// Context is the mutable execution frame threaded through the dispatch
// loop and every opcode handler. A Context is used for exactly one
// Interpret call and is not safe for concurrent use; concurrent calls to
// Interpret each construct and own a private Context (and, via sync.Pool,
// a private Stack).
type Context struct {
	code  []byte
	input []byte

	pc    uint64
	state State

	gas   GasMeter
	stack *Stack
	mem   Memory
	jumps *JumpTable

	// returnData is the byte sequence RETURN or REVERT would supply to the
	// caller. Neither opcode is implemented by this core, so it is never
	// populated; it is carried on Context so Result's ReturnData field has
	// a natural source once either opcode is added.
	returnData []byte

	cache *Cache
}

func newContext(args Args) *Context {
	c := &Context{
		code:  args.Code,
		input: args.Input,
		gas:   NewGasMeter(args.Gas),
		stack: NewStack(),
		state: Running,
		cache: args.Cache,
		mem:   Memory{alloc: args.Allocator},
	}
	if args.Cache != nil {
		c.jumps = args.Cache.jumpTableFor(args.Code)
	} else {
		c.jumps = NewJumpTable(args.Code)
	}
	return c
}

func (c *Context) release() {
	ReturnStack(c.stack)
	c.stack = nil
}

// currentOp returns the opcode at the program counter. The caller must have
// already established that pc is within the code; running off the end of
// the code without a prior Done is an ErrorOpcode condition, not an implicit
// STOP, and is detected by the caller before currentOp is reached.
func (c *Context) currentOp() OpCode {
	return OpCode(c.code[c.pc])
}
