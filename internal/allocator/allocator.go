// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package allocator stands in for the process-wide allocator-replacement
// shim described alongside the interpreter core. A full shim would replace
// malloc at the process level, which Go's runtime has no supported hook
// for, so this package models only the one seam the interpreter actually
// exercises: the buffers backing an execution's expandable memory. The
// stack and its pool stay on Go's ordinary allocator and sync.Pool reuse
// regardless of which Allocator is configured, since they are fixed-size
// and never grow.
package allocator

//go:generate mockgen -source allocator.go -destination allocator_mock.go -package allocator

// Allocator requests fixed-size, fixed-alignment byte buffers. A real
// allocator-replacement shim would route Allocate to a bundled
// high-performance allocator's entry point; this implementation routes it
// to Go's own allocator, since Go offers no supported way to install a
// process-wide substitute for it.
type Allocator interface {
	Allocate(size, alignment int) []byte
}

type goAllocator struct{}

// Default is the Allocator used when none is otherwise configured.
var Default Allocator = goAllocator{}

// Allocate returns a zeroed byte slice of size bytes. alignment is
// accepted for interface compatibility with a native shim but has no
// effect here: every Go slice is already aligned for any type that could
// address it.
func (goAllocator) Allocate(size, alignment int) []byte {
	_ = alignment
	return make([]byte, size)
}
