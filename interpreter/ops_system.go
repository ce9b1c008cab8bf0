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

// wordSizeCost is the per-word cost charged on top of SHA3's flat base
// cost. copyWordSizeCost is the per-word cost charged on top of the static
// cost of CALLDATACOPY, CODECOPY and MCOPY (see chargeCopyWords).
const wordSizeCost Gas = 6
const copyWordSizeCost Gas = 3

func opSha3(c *Context) error {
	offset, size := c.stack.Pop(), c.stack.Peek()
	if !offset.IsUint64() || !size.IsUint64() {
		return errOutOfGas
	}
	data, err := c.mem.GetSlice(&c.gas, offset.Uint64(), size.Uint64())
	if err != nil {
		return err
	}
	if err := c.gas.Apply(wordSizeCost * Gas(words(size.Uint64()))); err != nil {
		return err
	}
	hash := c.keccak256(data)
	size.SetBytes(hash[:])
	return nil
}

func opCallDataLoad(c *Context) error {
	offset := c.stack.Peek()
	var idx uint64
	if offset.IsUint64() {
		idx = offset.Uint64()
	} else {
		idx = uint64(len(c.input))
	}
	offset.SetBytes(getPaddedData(c.input, idx, 32))
	return nil
}

func opCallDataSize(c *Context) error {
	c.stack.PushUndefined().SetUint64(uint64(len(c.input)))
	return nil
}

func opCallDataCopy(c *Context) error {
	dst, off, size := c.stack.Pop(), c.stack.Pop(), c.stack.Pop()
	if !dst.IsUint64() || !size.IsUint64() {
		return errOutOfGas
	}
	if err := chargeCopyWords(c, size.Uint64()); err != nil {
		return err
	}
	var srcOffset uint64
	if off.IsUint64() {
		srcOffset = off.Uint64()
	} else {
		srcOffset = uint64(len(c.input))
	}
	return c.mem.CopyOut(&c.gas, dst.Uint64(), c.input, srcOffset, size.Uint64())
}

func opCodeSize(c *Context) error {
	c.stack.PushUndefined().SetUint64(uint64(len(c.code)))
	return nil
}

func opCodeCopy(c *Context) error {
	dst, off, size := c.stack.Pop(), c.stack.Pop(), c.stack.Pop()
	if !dst.IsUint64() || !size.IsUint64() {
		return errOutOfGas
	}
	if err := chargeCopyWords(c, size.Uint64()); err != nil {
		return err
	}
	var srcOffset uint64
	if off.IsUint64() {
		srcOffset = off.Uint64()
	} else {
		srcOffset = uint64(len(c.code))
	}
	return c.mem.CopyOut(&c.gas, dst.Uint64(), c.code, srcOffset, size.Uint64())
}

func chargeCopyWords(c *Context, size uint64) error {
	return c.gas.Apply(copyWordSizeCost * Gas(words(size)))
}

// getPaddedData returns length bytes starting at offset within data,
// zero-padding any portion that runs past the end of data. Used by
// CALLDATALOAD, which always reads exactly 32 bytes regardless of how
// much of the call's input actually remains.
func getPaddedData(data []byte, offset uint64, length int) []byte {
	buf := make([]byte, length)
	if offset >= uint64(len(data)) {
		return buf
	}
	n := copy(buf, data[offset:])
	_ = n
	return buf
}
