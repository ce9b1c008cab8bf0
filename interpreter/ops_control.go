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

// opJump and opJumpi set pc to target-1; the dispatch loop's generic
// pc++ after a successful step then lands exactly on target.

func opJump(c *Context) error {
	dest := c.stack.Pop()
	target, err := jumpTarget(c, dest)
	if err != nil {
		return err
	}
	c.pc = target - 1
	return nil
}

func opJumpi(c *Context) error {
	dest, cond := c.stack.Pop(), c.stack.Pop()
	if cond.IsZero() {
		return nil
	}
	target, err := jumpTarget(c, dest)
	if err != nil {
		return err
	}
	c.pc = target - 1
	return nil
}

func jumpTarget(c *Context, dest *Word) (uint64, error) {
	if !dest.IsUint64() {
		return 0, errInvalidJump
	}
	d := dest.Uint64()
	if !c.jumps.IsValid(d) {
		return 0, errInvalidJump
	}
	return d, nil
}

func opPc(c *Context) error {
	c.stack.PushUndefined().SetUint64(c.pc)
	return nil
}

func opGasOp(c *Context) error {
	c.stack.PushUndefined().SetUint64(uint64(c.gas.Remaining()))
	return nil
}
