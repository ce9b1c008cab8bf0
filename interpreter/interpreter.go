// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package interpreter implements a deterministic, gas-metered EVM bytecode
// core: a 256-bit word stack, byte-addressed expandable memory, a lazy
// jump-destination validator, and the opcode dispatch loop that ties them
// together.
package interpreter

// stackRequirement describes, for one opcode, the minimum stack length it
// needs before executing and the maximum stack length it may be executed
// at without the opcode's own pushes overflowing the 1024-word limit.
type stackRequirement struct {
	min, max int
}

func stackReq(pops, pushes int) stackRequirement {
	net := pushes - pops
	max := maxStackSize
	if net > 0 {
		max -= net
	}
	return stackRequirement{min: pops, max: max}
}

// stackRequirements maps every opcode this core dispatches to its stack
// precondition, checked centrally before the opcode switch runs. Opcodes
// absent from this map (everything not listed in the gas schedule) are
// rejected as ErrorOpcode before a stack check is even attempted.
var stackRequirements = buildStackRequirements()

func buildStackRequirements() map[OpCode]stackRequirement {
	m := map[OpCode]stackRequirement{
		STOP:     stackReq(0, 0),
		JUMPDEST: stackReq(0, 0),
		INVALID:  stackReq(0, 0),

		ADD: stackReq(2, 1), MUL: stackReq(2, 1), SUB: stackReq(2, 1),
		DIV: stackReq(2, 1), SDIV: stackReq(2, 1), MOD: stackReq(2, 1),
		SMOD: stackReq(2, 1), ADDMOD: stackReq(3, 1), MULMOD: stackReq(3, 1),
		EXP: stackReq(2, 1), SIGNEXTEND: stackReq(2, 1),

		LT: stackReq(2, 1), GT: stackReq(2, 1), SLT: stackReq(2, 1),
		SGT: stackReq(2, 1), EQ: stackReq(2, 1), ISZERO: stackReq(1, 1),
		AND: stackReq(2, 1), OR: stackReq(2, 1), XOR: stackReq(2, 1),
		NOT: stackReq(1, 1), BYTE: stackReq(2, 1), SHL: stackReq(2, 1),
		SHR: stackReq(2, 1), SAR: stackReq(2, 1),

		SHA3: stackReq(2, 1),

		CALLDATALOAD: stackReq(1, 1), CALLDATASIZE: stackReq(0, 1),
		CALLDATACOPY: stackReq(3, 0), CODESIZE: stackReq(0, 1),
		CODECOPY: stackReq(3, 0),

		POP: stackReq(1, 0), MLOAD: stackReq(1, 1), MSTORE: stackReq(2, 0),
		MSTORE8: stackReq(2, 0), JUMP: stackReq(1, 0), JUMPI: stackReq(2, 0),
		PC: stackReq(0, 1), MSIZE: stackReq(0, 1), GAS: stackReq(0, 1),
		MCOPY: stackReq(3, 0), PUSH0: stackReq(0, 1),
	}
	for op := PUSH1; op <= PUSH32; op++ {
		m[op] = stackReq(0, 1)
	}
	for i := 0; i < 16; i++ {
		n := i + 1
		m[DUP1+OpCode(i)] = stackReq(n, n+1)
		m[SWAP1+OpCode(i)] = stackReq(n+1, n+1)
	}
	return m
}

// Interpret runs code against input under a gas budget until it reaches a
// terminal state, then returns the result. It is the sole entry point of
// this package and may be called concurrently: each call owns a private
// Context and (modulo the optional shared, synchronised Cache) touches no
// state shared with any other concurrent call.
func Interpret(args Args) Result {
	c := newContext(args)
	defer c.release()

	for c.state == Running {
		step(c)
	}

	if c.state != Done {
		c.gas.Zero()
	}

	return Result{
		State:      c.state,
		GasLeft:    c.gas.Remaining(),
		ReturnData: c.returnData,
		StackSize:  c.stack.Len(),
		MemorySize: c.mem.Len(),
	}
}

// step executes exactly one instruction: it checks the stack precondition,
// charges the static gas cost, dispatches to the opcode's handler, and
// advances the program counter, in that order. Every handler that does not
// itself end the frame returns nil and leaves pc advancement to the
// generic increment below; JUMP/JUMPI/PUSHn handlers adjust pc so that the
// generic increment lands them on the correct next instruction.
func step(c *Context) {
	if c.pc >= uint64(len(c.code)) {
		c.state = ErrorOpcode
		return
	}
	op := c.currentOp()

	req, ok := stackRequirements[op]
	if !ok {
		c.state = ErrorOpcode
		return
	}
	if c.stack.Len() < req.min {
		c.state = ErrorStack
		return
	}
	if c.stack.Len() > req.max {
		c.state = ErrorStack
		return
	}

	cost, ok := staticGas[op]
	if !ok {
		c.state = ErrorOpcode
		return
	}
	if err := c.gas.Apply(cost); err != nil {
		c.state = stateForError(err)
		return
	}

	if err := dispatch(c, op); err != nil {
		c.state = stateForError(err)
		return
	}

	if c.state == Running {
		c.pc++
	}
}

// dispatch executes the handler for op. It returns a non-nil error for any
// failure that should terminate the frame (INVALID returns one that maps to
// the Invalid state), and otherwise leaves c.state as Running (the common
// case) or sets it directly to Done (STOP, and PUSHn with a truncated
// immediate).
func dispatch(c *Context, op OpCode) error {
	switch op {
	case STOP:
		c.state = Done
		return nil
	case INVALID:
		return errInvalidInstruct

	case ADD:
		return opAdd(c)
	case MUL:
		return opMul(c)
	case SUB:
		return opSub(c)
	case DIV:
		return opDiv(c)
	case SDIV:
		return opSDiv(c)
	case MOD:
		return opMod(c)
	case SMOD:
		return opSMod(c)
	case ADDMOD:
		return opAddMod(c)
	case MULMOD:
		return opMulMod(c)
	case EXP:
		return opExp(c)
	case SIGNEXTEND:
		return opSignExtend(c)

	case LT:
		return opLt(c)
	case GT:
		return opGt(c)
	case SLT:
		return opSlt(c)
	case SGT:
		return opSgt(c)
	case EQ:
		return opEq(c)
	case ISZERO:
		return opIsZero(c)
	case AND:
		return opAnd(c)
	case OR:
		return opOr(c)
	case XOR:
		return opXor(c)
	case NOT:
		return opNot(c)
	case BYTE:
		return opByte(c)
	case SHL:
		return opShl(c)
	case SHR:
		return opShr(c)
	case SAR:
		return opSar(c)

	case SHA3:
		return opSha3(c)

	case CALLDATALOAD:
		return opCallDataLoad(c)
	case CALLDATASIZE:
		return opCallDataSize(c)
	case CALLDATACOPY:
		return opCallDataCopy(c)
	case CODESIZE:
		return opCodeSize(c)
	case CODECOPY:
		return opCodeCopy(c)

	case POP:
		return opPop(c)
	case MLOAD:
		return opMLoad(c)
	case MSTORE:
		return opMStore(c)
	case MSTORE8:
		return opMStore8(c)
	case MCOPY:
		return opMCopy(c)
	case MSIZE:
		return opMSize(c)

	case JUMP:
		return opJump(c)
	case JUMPI:
		return opJumpi(c)
	case JUMPDEST:
		return nil
	case PC:
		return opPc(c)
	case GAS:
		return opGasOp(c)

	case PUSH0:
		return opPush0(c)
	}

	if n, ok := isPush(op); ok {
		return opPush(c, n)
	}
	if DUP1 <= op && op <= DUP16 {
		return opDup(c, int(op-DUP1)+1)
	}
	if SWAP1 <= op && op <= SWAP16 {
		return opSwap(c, int(op-SWAP1)+1)
	}

	return errInvalidOpcode
}
