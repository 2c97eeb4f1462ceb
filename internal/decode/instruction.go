// Package decode implements the CDC-160A instruction decode table: the
// 64-entry, F-opcode-indexed map from a fetched word to the effective
// address resolver and micro-operation that carry it out. Grounded on
// original_source/src/cdc160a/InstructionDecoder.py and Instructions.py,
// whose __DECODERS table this package's table mirrors row for row,
// generalized per SPEC_FULL.md section 12.1 to cover every opcode the
// source leaves unimplemented.
//
// The source's table is a literal list of row objects, each one of
// three shapes: a single instruction regardless of E ("singleton"), a
// pair of instructions chosen by whether E is zero ("bimodal"), or a
// sub-table keyed on E's full 6 bits ("irregular"). This package keeps
// that three-way split as a Row interface, the way mos6502/opcodes.go
// keeps one map entry per opcode rather than a giant switch.
package decode

import (
	"github.com/bdwalton/cdc160a/internal/ea"
	"github.com/bdwalton/cdc160a/internal/machine"
	"github.com/bdwalton/cdc160a/internal/microop"
)

// Advance tells the run loop how to set the next-instruction address
// once an instruction's logic has run. Most instructions are fixed
// width; jumps and self-timed instructions set nextAddress themselves
// inside their micro-op and want the run loop to leave it alone.
type Advance int

const (
	// AdvanceOne: next address is P+1 (one-word instruction).
	AdvanceOne Advance = iota
	// AdvanceTwo: next address is P+2 (two-word instruction; the
	// second word, conventionally called G, is the operand or a
	// block-transfer bound and is never itself fetched as an
	// instruction).
	AdvanceTwo
	// AdvanceNone: the micro-operation already set the next address
	// (jumps, ATE/ATX, initiate-buffer, block store, selective
	// jump/stop).
	AdvanceNone
)

// Instruction is one decode table entry: how to compute the effective
// address, what micro-operation to run, how many cycles it costs, and
// how to advance P afterward.
type Instruction struct {
	Mnemonic string
	EA       ea.Resolver
	Op       microop.Op
	Cycles   int
	Advance  Advance
	// SelfTimed instructions report their actual elapsed cycle count
	// from Op's return value instead of Cycles.
	SelfTimed bool
}

// Execute resolves the effective address, runs the micro-operation,
// advances P's latch as directed, and returns the elapsed cycle count.
// Grounded on spec.md section 4.6 steps 3-5 (fetch is the caller's
// job; Execute covers EA-resolve through advance-latch). Tests that
// want one call to run a whole instruction use this; the run loop
// itself calls ResolveEffectiveAddress and RunMicroOp separately so it
// can invoke the before_instruction_logic console hook in between, per
// spec.md section 4.6 step 5.
func (i Instruction) Execute(h *machine.Hardware) int {
	i.ResolveEffectiveAddress(h)
	return i.RunMicroOp(h)
}

// ResolveEffectiveAddress runs the instruction's EA resolver, setting S
// and the storage-cycle tag.
func (i Instruction) ResolveEffectiveAddress(h *machine.Hardware) {
	i.EA(h.Storage)
}

// RunMicroOp runs the instruction's micro-operation, advances P's latch
// as directed, and returns the elapsed cycle count. Callers must have
// already called ResolveEffectiveAddress.
func (i Instruction) RunMicroOp(h *machine.Hardware) int {
	elapsed := i.Op(h)
	switch i.Advance {
	case AdvanceOne:
		h.Storage.NextAfterOneWordInstruction()
	case AdvanceTwo:
		h.Storage.NextAfterTwoWordInstruction()
	case AdvanceNone:
		// Op already set the latch.
	}
	if i.SelfTimed {
		return elapsed
	}
	return i.Cycles
}

// ERR is the default every undefined or malformed opcode slot resolves
// to: an immediate error halt, one word, one cycle. Grounded on
// InstructionDecoder.py's __UNIMPLEMENTED sentinel, which every
// currently-unassigned row in the source table points at.
var ERR = Instruction{
	Mnemonic: "ERR",
	EA:       ea.NoAddress,
	Op:       microop.Error,
	Cycles:   1,
	Advance:  AdvanceOne,
}
