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

// Arithmetic opcode handlers. Each follows the same shape: pop the first
// operand, peek the second (which doubles as the destination), and let
// uint256 perform the 256-bit modular arithmetic in place. Division and
// modulo by zero are defined by the uint256 library to yield zero, which
// is exactly the EVM's own rule, so no explicit check is needed here.

func opAdd(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.Add(x, y)
	return nil
}

func opSub(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.Sub(x, y)
	return nil
}

func opMul(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.Mul(x, y)
	return nil
}

func opDiv(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.Div(x, y)
	return nil
}

func opSDiv(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.SDiv(x, y)
	return nil
}

func opMod(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.Mod(x, y)
	return nil
}

func opSMod(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	y.SMod(x, y)
	return nil
}

func opAddMod(c *Context) error {
	x, y, z := c.stack.Pop(), c.stack.Pop(), c.stack.Peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.AddMod(x, y, z)
	}
	return nil
}

func opMulMod(c *Context) error {
	x, y, z := c.stack.Pop(), c.stack.Pop(), c.stack.Peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.MulMod(x, y, z)
	}
	return nil
}

func opExp(c *Context) error {
	base, exponent := c.stack.Pop(), c.stack.Peek()
	if err := c.gas.Apply(expByteCost * Gas(significantBytes(exponent))); err != nil {
		return err
	}
	exponent.Exp(base, exponent)
	return nil
}

// significantBytes returns the number of bytes needed to hold w's value,
// matching the exponent-byte-length gas rule go-ethereum applies to EXP.
func significantBytes(w *Word) int {
	return (w.BitLen() + 7) / 8
}

func opSignExtend(c *Context) error {
	back, num := c.stack.Pop(), c.stack.Peek()
	num.ExtendSign(num, back)
	return nil
}
