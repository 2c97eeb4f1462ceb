package microop

import (
	"github.com/bdwalton/cdc160a/internal/iounit"
	"github.com/bdwalton/cdc160a/internal/machine"
)

// I/O micro-operations: external-function dispatch, normal-channel
// input/output (both single-word and block), and buffer-channel
// initiation. All are self-timed: their cost depends on the selected
// device's delay and, for the block forms, how many words moved.
// Grounded on Microinstructions.py's external_function, input_to_a,
// input_to_memory, output_from_a, output_no_address,
// output_from_memory, initiate_buffer_input/output.

// ExternalFunction performs an external function using [S](r) as the
// operand, selecting (or deselecting) the normal-channel device.
var ExternalFunction Op = wrap(func(h *machine.Hardware) {
	h.Storage.SetInterruptLock()
	operand := h.Storage.SRelativeAddressContents()
	response, ok := h.IO.ExternalFunction(operand)
	h.Storage.MachineHung = !ok
	if response != nil {
		h.Storage.A = *response
	}
})

// InputToA reads one word from the normal input channel into A.
var InputToA Op = func(h *machine.Hardware) int {
	ok, value := h.IO.ReadNormal()
	if ok {
		h.Storage.A = value
	} else {
		h.Storage.IndefiniteDelay()
	}
	return h.IO.ReadDelay()
}

// InputToMemory reads a block from the normal input channel into the
// indirect bank, starting at [S] and continuing while S is less than
// [G], the block's LWA+1.
var InputToMemory Op = func(h *machine.Hardware) int {
	h.Storage.NormalInputActive()
	elapsedCycles := 0
	lwaPlusOne := h.Storage.GContents()
	for h.Storage.S < lwaPlusOne && !h.Storage.MachineHung {
		ok, word := h.IO.ReadNormal()
		if ok {
			h.Storage.StoreAtSIndirectAndIncrementS(word)
		} else {
			h.Storage.IndefiniteDelay()
		}
		elapsedCycles += h.IO.ReadDelay()
	}
	return elapsedCycles
}

func writeWordNormal(h *machine.Hardware, value uint16) bool {
	h.Storage.NormalOutputActive()
	ok := h.IO.WriteNormal(value)
	if !ok {
		h.Storage.IndefiniteDelay()
	}
	return ok
}

// OutputFromA writes A to the device on the normal output channel.
var OutputFromA Op = func(h *machine.Hardware) int {
	writeWordNormal(h, h.Storage.A)
	return h.IO.WriteDelay()
}

// OutputNoAddress writes the unpacked instruction word (F in the
// upper 6 bits, E in the lower 6) to the normal output channel, per
// spec.md section 4.4's "output-no-address writing F||E".
var OutputNoAddress Op = func(h *machine.Hardware) int {
	writeWordNormal(h, (h.Storage.FOpcode<<6)|h.Storage.FAddress)
	return h.IO.WriteDelay()
}

// OutputFromMemory writes a block from the indirect bank to the
// normal output channel, starting at [S] and continuing while S is
// less than [G], the block's LWA+1, and the write succeeds.
var OutputFromMemory Op = func(h *machine.Hardware) int {
	elapsedCycles := 0
	lwaPlusOne := h.Storage.GContents()
	ioStatus := true
	for ioStatus && h.Storage.S < lwaPlusOne && !h.Storage.MachineHung {
		ioStatus = writeWordNormal(h, h.Storage.ReadFromSIndirectAndIncrementS())
		elapsedCycles += h.IO.WriteDelay()
	}
	return elapsedCycles
}

// InitiateBufferInput starts buffered input, or jumps to [G] if one
// is already running.
var InitiateBufferInput Op = func(h *machine.Hardware) int {
	elapsedCycles := 1
	switch h.IO.InitiateBufferInput(h.Storage) {
	case iounit.Started:
		h.Storage.NextAfterTwoWordInstruction()
	case iounit.AlreadyRunning:
		h.Storage.GToNextAddress()
		elapsedCycles = 2
	}
	return elapsedCycles
}

// InitiateBufferOutput is InitiateBufferInput's output counterpart.
var InitiateBufferOutput Op = func(h *machine.Hardware) int {
	elapsedCycles := 1
	switch h.IO.InitiateBufferOutput(h.Storage) {
	case iounit.Started:
		h.Storage.NextAfterTwoWordInstruction()
	case iounit.AlreadyRunning:
		h.Storage.GToNextAddress()
		elapsedCycles = 2
	}
	return elapsedCycles
}
