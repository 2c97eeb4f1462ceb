package microop

import "github.com/bdwalton/cdc160a/internal/machine"

// Buffer-control micro-operations: ATE/ATX (self-timed, their cost
// depends on whether a buffer transfer is already underway),
// BER/BXR/BDR register moves, and the synchronous block-store fast
// fill. Grounded on Microinstructions.py's a_to_buffer_entrance/exit,
// buffer_entrance_to_a/buffer_exit_to_a,
// buffer_entrance_to_direct_and_set_from_a, clear_buffer_controls,
// and block_store.

// ATE: A to BER (0105 YYYY), self-timed.
var ATE Op = func(h *machine.Hardware) int {
	if h.Storage.Buffering {
		h.Storage.GToNextAddress()
		return 2
	}
	h.Storage.AToBufferEntranceRegister()
	h.Storage.NextAfterTwoWordInstruction()
	return 1
}

// ATX: A to BXR (0106 YYYY), self-timed.
var ATX Op = func(h *machine.Hardware) int {
	if h.Storage.Buffering {
		h.Storage.GToNextAddress()
		return 2
	}
	h.Storage.AToBufferExitRegister()
	h.Storage.NextAfterTwoWordInstruction()
	return 1
}

var BufferEntranceToA Op = wrap(func(h *machine.Hardware) { h.Storage.BufferEntranceToA() })
var BufferExitToA Op = wrap(func(h *machine.Hardware) { h.Storage.BufferExitToA() })

// BufferEntranceToDirectAndSetFromA stores BER at [E](d), then loads
// A into BER, unconditionally, without checking for an active
// transfer.
var BufferEntranceToDirectAndSetFromA Op = wrap(func(h *machine.Hardware) {
	h.Storage.BufferEntranceRegisterToDirectStorage()
	h.Storage.AToBufferEntranceRegister()
})

// ClearBufferControls drops the buffer channel's selected device and
// pump and clears the buffering flag.
var ClearBufferControls Op = wrap(func(h *machine.Hardware) { h.IO.ClearBufferControls(h.Storage) })

// BlockStore fast-fills the buffer bank from BER to BXR-1 with A
// (copied into BDR first), using the synchronous buffer-data-to-memory step
// rather than the asynchronous buffer pump. Self-timed: each word
// moved costs one cycle.
var BlockStore Op = func(h *machine.Hardware) int {
	if h.Storage.Buffering {
		h.Storage.GToNextAddress()
		return 2
	}
	cyclesUsed := 1
	h.Storage.AToBufferDataRegister()
	h.Storage.StartBuffering()
	for h.Storage.BufferDataToMemory() {
		cyclesUsed++
	}
	h.Storage.StopBuffering()
	h.Storage.NextAfterTwoWordInstruction()
	return cyclesUsed
}
