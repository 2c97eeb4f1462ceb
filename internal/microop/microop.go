// Package microop is the CDC-160A micro-operation library: the small
// state transitions instructions are composed from. Grounded
// file-by-file on original_source/src/cdc160a/Microinstructions.py,
// whose functions are themselves thin forwarders onto Storage/IOUnit
// methods; this package mirrors that shape, delegating the substance
// to internal/storage and internal/iounit.
//
// Split across several ops_*.go files by category (move, arithmetic,
// logic, shift, branch, bank control, buffer control, I/O, control),
// the way user-none-go-chip-m68k (a repo elsewhere in the retrieval
// pack) splits its micro-op library across files by category, and the
// way the teacher splits mos6502.go into one handler per opcode.
package microop

import "github.com/bdwalton/cdc160a/internal/machine"

// Op is a micro-operation: it mutates hardware state and returns the
// number of machine cycles it consumed. Most micro-ops are fixed-cost
// (their decode table row supplies the cycle count and ignores the
// return value); a handful are self-timed (I/O transfers, selective
// jump/stop, ATE/ATX, block store, initiate-buffer) and the decode
// table row for those is marked SelfTimed so the run loop uses the
// returned value instead.
type Op func(h *machine.Hardware) int

// wrap adapts a cycle-agnostic function into an Op that always
// reports zero (the caller's static cycle count applies).
func wrap(f func(h *machine.Hardware)) Op {
	return func(h *machine.Hardware) int {
		f(h)
		return 0
	}
}
