package microop

import "github.com/bdwalton/cdc160a/internal/machine"

// Halt, error, interrupt-lock, and the selective jump/stop family
// reachable under opcode 77 (see internal/decode). Grounded on
// Microinstructions.py's halt, error, clear_interrupt_lock,
// selective_jump/stop/stop_and_jump.

var Halt Op = wrap(func(h *machine.Hardware) { h.Storage.Halt() })

var Error Op = wrap(func(h *machine.Hardware) { h.Storage.ErrorHalt() })

var ClearInterruptLock Op = wrap(func(h *machine.Hardware) { h.Storage.ClearInterruptLock() })

// SelectiveJump tests the high 3 bits of E against the jump switch
// mask, jumping to [G] if any match, otherwise falling through to the
// next two-word instruction. Self-timed: 2 cycles if taken, 1 if not.
var SelectiveJump Op = func(h *machine.Hardware) int {
	mask := uint8((h.Storage.FAddress >> 3) & 0o7)
	if h.Storage.AndWithJumpSwitches(mask) != 0 {
		h.Storage.GToNextAddress()
		return 2
	}
	h.Storage.NextAfterTwoWordInstruction()
	return 1
}

// SelectiveStop halts if the low 3 bits of E match the stop switch
// mask.
var SelectiveStop Op = wrap(func(h *machine.Hardware) {
	mask := uint8(h.Storage.FAddress & 0o7)
	if h.Storage.AndWithStopSwitches(mask) != 0 {
		h.Storage.Stop()
	}
})

// SelectiveStopAndJump runs SelectiveStop, then SelectiveJump,
// reporting SelectiveJump's cycle count.
var SelectiveStopAndJump Op = func(h *machine.Hardware) int {
	SelectiveStop(h)
	return SelectiveJump(h)
}
