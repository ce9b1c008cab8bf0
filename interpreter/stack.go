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

import (
	"fmt"
	"strings"
	"sync"

	"github.com/holiman/uint256"
)

// maxStackSize is the maximum number of words the Stack may hold.
const maxStackSize = 1024

// Word is the 256-bit value type operated on by the stack and the opcode
// handlers. It is a pure value type provided by the holiman/uint256
// library; the interpreter core never implements 256-bit arithmetic itself.
type Word = uint256.Int

// Stack is the 1024-element 256-bit word-wide LIFO used by the interpreter.
// It is fixed-size to avoid reallocation during execution. Callers must
// check size bounds before calling push/pop/peek; the stack itself does not
// guard against over- or underflow.
//
// Stacks are expensive to zero (32KiB each), so a reuse pool is provided:
// obtain one with NewStack and return it with ReturnStack. The stack is not
// thread-safe.
type Stack struct {
	data [maxStackSize]Word
	len  int
}

// Push adds a copy of the given value to the top of the stack.
func (s *Stack) Push(v *Word) {
	s.data[s.len] = *v
	s.len++
}

// PushUndefined reserves a new top-of-stack slot with unspecified content
// and returns a pointer to it, letting the caller fill it in directly
// without an intermediate copy.
func (s *Stack) PushUndefined() *Word {
	s.len++
	return &s.data[s.len-1]
}

// Pop removes and returns a pointer to the top element. The pointer is
// valid only until the next stack mutation.
func (s *Stack) Pop() *Word {
	s.len--
	return &s.data[s.len]
}

// Peek returns a pointer to the top element without removing it.
func (s *Stack) Peek() *Word {
	return &s.data[s.len-1]
}

// PeekN returns a pointer to the n-th element from the top (0-indexed);
// PeekN(0) is equivalent to Peek.
func (s *Stack) PeekN(n int) *Word {
	return &s.data[s.len-n-1]
}

// Len returns the number of elements currently on the stack.
func (s *Stack) Len() int {
	return s.len
}

// SwapTopWith exchanges the top element with the n-th element from the top
// (0-indexed); SwapTopWith(0) is a no-op.
func (s *Stack) SwapTopWith(n int) {
	s.data[s.len-n-1], s.data[s.len-1] = s.data[s.len-1], s.data[s.len-n-1]
}

// Dup duplicates the n-th element from the top (0-indexed) and pushes the
// copy onto the top of the stack.
func (s *Stack) Dup(n int) {
	s.data[s.len] = s.data[s.len-n-1]
	s.len++
}

func (s *Stack) String() string {
	b := strings.Builder{}
	for i := 0; i < s.len; i++ {
		b.WriteString(fmt.Sprintf("    [%4d] 0x%x\n", s.len-i-1, s.PeekN(i).Bytes32()))
	}
	return b.String()
}

var stackPool = sync.Pool{
	New: func() any { return &Stack{} },
}

// NewStack returns an empty stack from a reuse pool. Thread-safe.
func NewStack() *Stack {
	return stackPool.Get().(*Stack)
}

// ReturnStack returns s to the reuse pool. A stack may only be returned
// once. Thread-safe.
func ReturnStack(s *Stack) {
	s.len = 0
	stackPool.Put(s)
}
