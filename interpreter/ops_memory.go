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

func opMLoad(c *Context) error {
	offset := c.stack.Peek()
	if !offset.IsUint64() {
		return errOutOfGas
	}
	w, err := c.mem.ReadWord(&c.gas, offset.Uint64())
	if err != nil {
		return err
	}
	*offset = w
	return nil
}

func opMStore(c *Context) error {
	offset, value := c.stack.Pop(), c.stack.Pop()
	if !offset.IsUint64() {
		return errOutOfGas
	}
	return c.mem.SetWord(&c.gas, offset.Uint64(), value)
}

func opMStore8(c *Context) error {
	offset, value := c.stack.Pop(), c.stack.Pop()
	if !offset.IsUint64() {
		return errOutOfGas
	}
	return c.mem.SetByte(&c.gas, offset.Uint64(), value)
}

func opMCopy(c *Context) error {
	dst, src, size := c.stack.Pop(), c.stack.Pop(), c.stack.Pop()
	if !dst.IsUint64() || !src.IsUint64() || !size.IsUint64() {
		return errOutOfGas
	}
	if err := chargeCopyWords(c, size.Uint64()); err != nil {
		return err
	}
	return c.mem.Copy(&c.gas, dst.Uint64(), src.Uint64(), size.Uint64())
}

func opMSize(c *Context) error {
	c.stack.PushUndefined().SetUint64(c.mem.Len())
	return nil
}
