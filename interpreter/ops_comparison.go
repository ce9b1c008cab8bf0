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

func setBool(w *Word, b bool) {
	if b {
		w.SetOne()
	} else {
		w.Clear()
	}
}

func opLt(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	setBool(y, x.Lt(y))
	return nil
}

func opGt(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	setBool(y, x.Gt(y))
	return nil
}

func opSlt(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	setBool(y, x.Slt(y))
	return nil
}

func opSgt(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	setBool(y, x.Sgt(y))
	return nil
}

func opEq(c *Context) error {
	x, y := c.stack.Pop(), c.stack.Peek()
	setBool(y, x.Eq(y))
	return nil
}

func opIsZero(c *Context) error {
	x := c.stack.Peek()
	setBool(x, x.IsZero())
	return nil
}
