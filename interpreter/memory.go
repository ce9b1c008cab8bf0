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

// maxMemorySize caps the byte-addressed memory size this core will ever
// attempt to allocate. It is far beyond anything reachable under a real
// gas budget (the quadratic expansion cost exhausts any plausible meter
// long before this is approached); it exists purely so offset/size
// arithmetic derived from a 256-bit Word cannot be coerced into an
// out-of-range Go slice index.
const maxMemorySize = 1 << 32

// Memory is the byte-addressed, word-granular expandable memory used by
// MLOAD/MSTORE/MSTORE8/MCOPY/SHA3/CALLDATACOPY/CODECOPY. Its length is
// always a multiple of 32 bytes; it grows only in response to an explicit
// expansion request paired with a gas charge, never implicitly.
type Memory struct {
	store []byte
	alloc allocator.Allocator
}

// Len returns the current memory size in bytes, always a multiple of 32.
func (m *Memory) Len() uint64 {
	return uint64(len(m.store))
}

// words returns the number of 32-byte words the given byte length rounds
// up to.
func words(size uint64) uint64 {
	return sizeInWords(size)
}

// expansionCost returns the additional gas required to make the memory at
// least offset+size bytes long, without performing the expansion. A
// zero-size access never requires expansion, matching EVM semantics for
// zero-length reads and writes at arbitrary offsets.
func (m *Memory) expansionCost(offset, size uint64) Gas {
	if size == 0 {
		return 0
	}
	newSize, overflow := addSize(offset, size)
	if overflow || newSize > maxMemorySize {
		return maxGas
	}
	return memoryExpansionCost(m.Len(), requiredSize(newSize))
}

// addSize adds offset and size, reporting overflow rather than wrapping.
func addSize(offset, size uint64) (sum uint64, overflow bool) {
	sum = offset + size
	return sum, sum < offset
}

// requiredSize rounds n up to the next multiple of 32.
func requiredSize(n uint64) uint64 {
	return words(n) * 32
}

// expand grows the memory to cover offset+size bytes, charging meter for
// the expansion. It is a no-op (beyond the charge, which is itself a
// no-op) when the memory is already large enough or size is zero.
func (m *Memory) expand(meter *GasMeter, offset, size uint64) error {
	if size == 0 {
		return nil
	}
	newSize, overflow := addSize(offset, size)
	if overflow || newSize > maxMemorySize {
		return errOutOfGas
	}
	target := requiredSize(newSize)
	if target <= m.Len() {
		return nil
	}
	if err := meter.Apply(memoryExpansionCost(m.Len(), target)); err != nil {
		return err
	}
	alloc := m.alloc
	if alloc == nil {
		alloc = allocator.Default
	}
	grown := alloc.Allocate(int(target), 32)
	copy(grown, m.store)
	m.store = grown
	return nil
}

// SetWord charges for and performs the 32-byte expansion needed, then
// writes v in big-endian order at offset (MSTORE).
func (m *Memory) SetWord(meter *GasMeter, offset uint64, v *Word) error {
	if err := m.expand(meter, offset, 32); err != nil {
		return err
	}
	b := v.Bytes32()
	copy(m.store[offset:offset+32], b[:])
	return nil
}

// SetByte charges for and performs the 1-byte expansion needed, then
// writes the low-order byte of v at offset (MSTORE8).
func (m *Memory) SetByte(meter *GasMeter, offset uint64, v *Word) error {
	if err := m.expand(meter, offset, 1); err != nil {
		return err
	}
	m.store[offset] = byte(v.Uint64())
	return nil
}

// Set charges for and performs the expansion needed to hold data, then
// copies data into memory at offset.
func (m *Memory) Set(meter *GasMeter, offset uint64, data []byte) error {
	if err := m.expand(meter, offset, uint64(len(data))); err != nil {
		return err
	}
	copy(m.store[offset:], data)
	return nil
}

// Copy charges for and performs the expansion needed to cover the larger
// of the source and destination ranges, then moves size bytes from src to
// dst within memory (MCOPY). The ranges may overlap.
func (m *Memory) Copy(meter *GasMeter, dst, src, size uint64) error {
	if size == 0 {
		return nil
	}
	hi := dst
	if src > hi {
		hi = src
	}
	if err := m.expand(meter, hi, size); err != nil {
		return err
	}
	copy(m.store[dst:dst+size], m.store[src:src+size])
	return nil
}

// ReadWord charges for and performs the expansion needed, then returns the
// 32-byte word at offset (MLOAD).
func (m *Memory) ReadWord(meter *GasMeter, offset uint64) (Word, error) {
	if err := m.expand(meter, offset, 32); err != nil {
		return Word{}, err
	}
	var w Word
	w.SetBytes(m.store[offset : offset+32])
	return w, nil
}

// GetSlice charges for and performs the expansion needed, then returns a
// slice referencing size bytes of memory starting at offset. The returned
// slice aliases the backing array and is invalidated by a subsequent
// expansion.
func (m *Memory) GetSlice(meter *GasMeter, offset, size uint64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if err := m.expand(meter, offset, size); err != nil {
		return nil, err
	}
	return m.store[offset : offset+size], nil
}

// CopyOut copies size bytes starting at offset from src into memory at
// dst, zero-padding any portion of the read that runs past the end of
// src. Used by CALLDATACOPY and CODECOPY, where src is the call's input or
// code and the read itself is never charged (only the destination memory
// expansion is).
func (m *Memory) CopyOut(meter *GasMeter, dst uint64, src []byte, srcOffset, size uint64) error {
	if err := m.expand(meter, dst, size); err != nil {
		return err
	}
	dstSlice := m.store[dst : dst+size]
	if srcOffset >= uint64(len(src)) {
		for i := range dstSlice {
			dstSlice[i] = 0
		}
		return nil
	}
	n := copy(dstSlice, src[srcOffset:])
	for i := n; i < len(dstSlice); i++ {
		dstSlice[i] = 0
	}
	return nil
}
