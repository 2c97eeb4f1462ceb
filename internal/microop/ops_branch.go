package microop

import (
	"github.com/bdwalton/cdc160a/internal/arith"
	"github.com/bdwalton/cdc160a/internal/machine"
)

// Jumps and conditional branches. Microinstructions.py defines these
// (jump_if_a_*, jump_forward_indirect, jump_indirect, return_jump) but
// Instructions.py, the source's instruction table, never reaches far
// enough to wire them to opcodes (it stops after the LD/ST family);
// internal/decode supplies that wiring, invented per SPEC_FULL.md
// section 12.1.

// JumpIfANegative jumps to S if A is negative, otherwise falls
// through to the next one-word instruction.
var JumpIfANegative Op = wrap(func(h *machine.Hardware) {
	if h.Storage.ANegative() {
		h.Storage.SToNextAddress()
	} else {
		h.Storage.NextAfterOneWordInstruction()
	}
})

var JumpIfANotZero Op = wrap(func(h *machine.Hardware) {
	if h.Storage.ANotZero() {
		h.Storage.SToNextAddress()
	} else {
		h.Storage.NextAfterOneWordInstruction()
	}
})

var JumpIfAPositive Op = wrap(func(h *machine.Hardware) {
	if h.Storage.APositive() {
		h.Storage.SToNextAddress()
	} else {
		h.Storage.NextAfterOneWordInstruction()
	}
})

var JumpIfAZero Op = wrap(func(h *machine.Hardware) {
	if h.Storage.AZero() {
		h.Storage.SToNextAddress()
	} else {
		h.Storage.NextAfterOneWordInstruction()
	}
})

// JumpForwardIndirect (JFI): [S](r) -> P.
var JumpForwardIndirect Op = wrap(func(h *machine.Hardware) { h.Storage.SRelativeToNextAddress() })

// JumpIndirect (JPI): [E](d) -> P.
var JumpIndirect Op = wrap(func(h *machine.Hardware) {
	h.Storage.DirectToZ(h.Storage.FAddress)
	h.Storage.ZToNextAddress()
})

// ReturnJump (RTN): stores P+2, the return address, at [S](r) and
// resumes execution at S+1, implementing a subroutine call to the
// address originally in S.
var ReturnJump Op = wrap(func(h *machine.Hardware) {
	jumpAddress := arith.Add(h.Storage.S, 1)
	h.Storage.ValueToSAddressRelative(arith.Add(h.Storage.P, 2))
	h.Storage.SetNextInstructionAddress(jumpAddress)
})
