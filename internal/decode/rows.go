package decode

import (
	"github.com/bdwalton/cdc160a/internal/ea"
	"github.com/bdwalton/cdc160a/internal/microop"
)

// Row is one decode-table slot: something that turns E into an
// Instruction. Grounded on InstructionDecoder.py's three decoder
// classes (Singleton, Bimodal, and the per-opcode irregular decoders
// OpCode01/OpCode77), kept as an interface rather than a single struct
// with a mode flag, the way internal/ea and internal/microop keep
// function-value tables instead of branching on a mode argument.
type Row interface {
	Decode(e uint16) Instruction
}

// Singleton is an opcode with one meaning regardless of E.
type Singleton struct {
	Instruction Instruction
}

func (s Singleton) Decode(e uint16) Instruction { return s.Instruction }

// Bimodal is an opcode with one meaning when E is zero and another
// otherwise.
type Bimodal struct {
	EZero, ENonzero Instruction
}

func (b Bimodal) Decode(e uint16) Instruction {
	if e == 0 {
		return b.EZero
	}
	return b.ENonzero
}

// Irregular keys a full opcode's worth of instructions by E's 6 bits;
// unassigned E values fall through to ERR, per Unimplemented.
type Irregular struct {
	byE map[uint16]Instruction
}

func (r Irregular) Decode(e uint16) Instruction {
	if instr, ok := r.byE[e&0o77]; ok {
		return instr
	}
	return ERR
}

// --- Opcode 01: shifts, rotates, and a handful of no-address special
// operations. Grounded on InstructionDecoder.py's OpCode01, which only
// wires E values 0o02, 0o03, 0o10, 0o11, 0o14, 0o15 (its own comment:
// "the remaining instructions"); the rest (CBC, PTA, ATE, ATX, BCA,
// MUT, MUH, CIL) are this rewrite's completion of that table, sharing
// its no-operand shape: each takes E purely as a sub-opcode selector,
// never as an address or immediate, so every row uses ea.Vacuous. ---

var cbc = Instruction{Mnemonic: "CBC", EA: ea.Vacuous, Op: microop.ClearBufferControls, Cycles: 1, Advance: AdvanceOne}
var ls1 = Instruction{Mnemonic: "LS1", EA: ea.Vacuous, Op: microop.RotateALeftOne, Cycles: 1, Advance: AdvanceOne}
var ls2 = Instruction{Mnemonic: "LS2", EA: ea.Vacuous, Op: microop.RotateALeftTwo, Cycles: 1, Advance: AdvanceOne}
var ls3 = Instruction{Mnemonic: "LS3", EA: ea.Vacuous, Op: microop.RotateALeftThree, Cycles: 1, Advance: AdvanceOne}
var ls6 = Instruction{Mnemonic: "LS6", EA: ea.Vacuous, Op: microop.RotateALeftSix, Cycles: 1, Advance: AdvanceOne}
var rs1 = Instruction{Mnemonic: "RS1", EA: ea.Vacuous, Op: microop.ShiftARightOne, Cycles: 1, Advance: AdvanceOne}
var rs2 = Instruction{Mnemonic: "RS2", EA: ea.Vacuous, Op: microop.ShiftARightTwo, Cycles: 1, Advance: AdvanceOne}
var pta = Instruction{Mnemonic: "PTA", EA: ea.Vacuous, Op: microop.PToA, Cycles: 1, Advance: AdvanceOne}
var bca = Instruction{Mnemonic: "BCA", EA: ea.Vacuous, Op: microop.BankControlsToA, Cycles: 1, Advance: AdvanceOne}
var mut = Instruction{Mnemonic: "MUT", EA: ea.Vacuous, Op: microop.MultiplyABy10, Cycles: 4, Advance: AdvanceOne}
var muh = Instruction{Mnemonic: "MUH", EA: ea.Vacuous, Op: microop.MultiplyABy100, Cycles: 7, Advance: AdvanceOne}
var cil = Instruction{Mnemonic: "CIL", EA: ea.Vacuous, Op: microop.ClearInterruptLock, Cycles: 1, Advance: AdvanceOne}

// ate/atx are two-word, self-timed: Op sets the next address itself
// in both the "already buffering" and "start buffering" branches, per
// ops_buffer.go.
var ate = Instruction{Mnemonic: "ATE", EA: ea.Vacuous, Op: microop.ATE, Advance: AdvanceNone, SelfTimed: true}
var atx = Instruction{Mnemonic: "ATX", EA: ea.Vacuous, Op: microop.ATX, Advance: AdvanceNone, SelfTimed: true}

var opcode01 = Irregular{byE: map[uint16]Instruction{
	0o01: cbc,
	0o02: ls1,
	0o03: ls2,
	0o04: pta,
	0o05: ate,
	0o06: atx,
	0o07: bca,
	0o10: ls3,
	0o11: ls6,
	0o12: mut,
	0o13: muh,
	0o14: rs1,
	0o15: rs2,
	0o16: cil,
}}

// --- Opcode 77: halt and the combined selective-stop-and-jump family.
// Grounded on InstructionDecoder.py's OpCode77, which wires only E==0
// and E==0o77 to HLT and leaves every other E value a TODO; every
// other E value here runs SelectiveStopAndJump, applying both the
// stop-switch test (E's low 3 bits) and the jump-switch test (E's high
// 3 bits) uniformly, per Microinstructions.py's selective_stop_and_jump
// and spec.md's description of opcode 77 as a single combined
// instruction rather than separate jump-only/stop-only opcodes. ---

var hlt = Instruction{Mnemonic: "HLT", EA: ea.NoAddress, Op: microop.Halt, Cycles: 1, Advance: AdvanceOne}
var ssj = Instruction{Mnemonic: "SSJ", EA: ea.Vacuous, Op: microop.SelectiveStopAndJump, Advance: AdvanceNone, SelfTimed: true}

type opcode77Row struct{}

func (opcode77Row) Decode(e uint16) Instruction {
	e &= 0o77
	if e == 0o00 || e == 0o77 {
		return hlt
	}
	return ssj
}

var opcode77 = opcode77Row{}
