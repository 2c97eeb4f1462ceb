// Package runloop implements the CDC-160A's fetch/decode/execute cycle
// described in spec.md section 4.6. original_source/src/cdc160a/
// RunLoop.py is a skeleton (its own TODO comments list everything this
// package actually does: console switches, interrupt handling, buffer
// pumping, and decoupling instruction decode from Storage), so this
// package is SPEC_FULL.md section 12.2's concrete completion of it,
// grounded on the ten-step tick spec.md section 4.6 spells out in
// prose and on the already-built internal/decode, internal/storage,
// and internal/iounit APIs.
package runloop

import (
	"github.com/bdwalton/cdc160a/internal/decode"
	"github.com/bdwalton/cdc160a/internal/iounit"
	"github.com/bdwalton/cdc160a/internal/machine"
	"github.com/bdwalton/cdc160a/internal/storage"
)

// Console is the run loop's collaborator, matching
// original_source/src/cdc160a/BaseConsole.py's three abstract methods.
// Kept as a narrow interface (rather than importing internal/console
// directly) so tests can supply a stub that never blocks.
type Console interface {
	BeforeInstructionFetch(s *storage.Storage, io *iounit.IOUnit)
	BeforeInstructionLogic(s *storage.Storage, io *iounit.IOUnit)
	BeforeAdvance(s *storage.Storage, io *iounit.IOUnit) bool
}

// RunLoop ties Hardware and a Console together and runs the machine.
// Grounded on RunLoop.py's constructor, which also just stores a
// Storage reference; this version additionally owns the I/O unit
// (via Hardware) and the console collaborator the source's TODOs
// never wired in.
type RunLoop struct {
	hardware *machine.Hardware
	console  Console
}

// New builds a RunLoop over hardware, driven by console.
func New(hardware *machine.Hardware, console Console) *RunLoop {
	return &RunLoop{hardware: hardware, console: console}
}

// Run repeatedly ticks the machine until a tick reports the loop
// should stop (the console's before_advance hook returned false), or
// until a console that has an Exiting() bool method reports that the
// operator has exited.
func (r *RunLoop) Run() {
	for r.Tick() {
		if c, ok := r.console.(interface{ Exiting() bool }); ok && c.Exiting() {
			return
		}
	}
}

// Tick runs spec.md section 4.6's ten numbered steps once and reports
// whether the loop should continue. A machine left stopped after step
// 1 still reports true: the outer Run loop keeps calling Tick so the
// console gets a chance to restart it on a later call.
func (r *RunLoop) Tick() bool {
	s := r.hardware.Storage
	io := r.hardware.IO

	// Step 1: console gate on the stopped machine.
	if !s.RunStop {
		r.console.BeforeInstructionFetch(s, io)
		if !s.RunStop {
			return true
		}
	}

	// Step 2: interrupt entry takes priority over fetching the next
	// instruction, and consumes this tick entirely.
	if s.InterruptLock == storage.LockFree {
		if level, pending := s.HighestPendingInterrupt(); pending {
			r.enterInterrupt(level)
			return true
		}
	}

	// Steps 3-4: fetch, unpack, and resolve the effective address.
	s.UnpackInstruction()
	instr := decode.Decode(s.FOpcode, s.FAddress)
	instr.ResolveEffectiveAddress(r.hardware)

	// Step 5: the console may stop the machine before logic runs,
	// e.g. on a breakpoint at the resolved address.
	r.console.BeforeInstructionLogic(s, io)
	if !s.RunStop {
		return true
	}

	// Step 6: run the micro-operation and set the next-address latch.
	// A lock that was already pending before this instruction opens at
	// its end; one that CIL moves to pending here stays held until the
	// end of the next instruction.
	lockWasPending := s.InterruptLock == storage.LockUnlockPending
	elapsed := instr.RunMicroOp(r.hardware)

	// Step 7: pump any active buffer channel by the elapsed cycles.
	io.PumpBufferChannel(elapsed, s)

	// Step 8: the interrupt lock's one-instruction delay elapses.
	if lockWasPending {
		s.TickInterruptLock()
	}

	// Step 9: the console may stop the run loop entirely (tests only;
	// production consoles always return true).
	if !r.console.BeforeAdvance(s, io) {
		return false
	}

	// Step 10: advance P.
	s.AdvanceToNextInstruction()
	return true
}

// enterInterrupt implements spec.md section 4.6 step 2 and
// SPEC_FULL.md section 12.2: push P into the level's fixed direct-bank
// save slot, jump to its fixed handler address, lock the interrupt
// gate, and clear the request.
func (r *RunLoop) enterInterrupt(level int) {
	s := r.hardware.Storage
	s.WriteDirectBank(storage.InterruptSaveAddress(level), s.P)
	s.P = storage.InterruptHandlerAddress(level)
	s.SetNextInstructionAddress(storage.InterruptHandlerAddress(level))
	s.AcknowledgeInterrupt(level)
}
