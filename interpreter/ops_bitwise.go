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

func opAnd(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.And(x, y)
	return nil
}

func opOr(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.Or(x, y)
	return nil
}

func opXor(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.Xor(x, y)
	return nil
}

func opNot(c *Context) error {
	x := c.stack.Peek()
	x.Not(x)
	return nil
}

func opByte(c *Context) error {
	index, val := c.stack.Pop(), c.stack.Peek()
	val.Byte(index)
	return nil
}

// shiftAmount converts a shift-count operand to a machine uint, saturating
// at 256 (any shift of 256 or more yields an all-zero or all-ones result,
// so the exact saturated value beyond that threshold never matters).
func shiftAmount(w *Word) (n uint, tooLarge bool) {
	if !w.IsUint64() || w.Uint64() >= 256 {
		return 256, true
	}
	return uint(w.Uint64()), false
}

func opShl(c *Context) error {
	shift, value := c.stack.Pop(), c.stack.Peek()
	if n, tooLarge := shiftAmount(shift); tooLarge {
		value.Clear()
	} else {
		value.Lsh(value, n)
	}
	return nil
}

func opShr(c *Context) error {
	shift, value := c.stack.Pop(), c.stack.Peek()
	if n, tooLarge := shiftAmount(shift); tooLarge {
		value.Clear()
	} else {
		value.Rsh(value, n)
	}
	return nil
}

func opSar(c *Context) error {
	shift, value := c.stack.Pop(), c.stack.Peek()
	if n, tooLarge := shiftAmount(shift); tooLarge {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return nil
	} else {
		value.SRsh(value, n)
	}
	return nil
}
