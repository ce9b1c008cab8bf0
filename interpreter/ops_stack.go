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

func opPop(c *Context) error {
	c.stack.Pop()
	return nil
}

// opPush0 pushes the zero word (EIP-3855). Unlike opPush it consumes no
// immediate bytes, so it leaves pc untouched for the generic increment.
func opPush0(c *Context) error {
	c.stack.PushUndefined().Clear()
	return nil
}

// opPush reads the n immediate bytes following the opcode and pushes them
// as a big-endian word. It advances pc by n; the dispatch loop's generic
// increment then accounts for the opcode byte itself, landing pc on the
// first byte after the immediate.
//
// If the code ends before n bytes are available, the push does not
// happen at all: pc is advanced to the end of the code and the frame
// terminates successfully (state = Done) rather than producing a
// partial, zero-padded value.
func opPush(c *Context, n int) error {
	start := c.pc + 1
	end := start + uint64(n)
	if end > uint64(len(c.code)) {
		c.pc = uint64(len(c.code))
		c.state = Done
		return nil
	}
	var buf [32]byte
	copy(buf[32-n:], c.code[start:end])
	c.stack.PushUndefined().SetBytes(buf[32-n:])
	c.pc += uint64(n)
	return nil
}

func opDup(c *Context, n int) error {
	c.stack.Dup(n - 1)
	return nil
}

func opSwap(c *Context, n int) error {
	c.stack.SwapTopWith(n)
	return nil
}
