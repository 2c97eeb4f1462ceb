// Package bootloader implements the CDC-160A boot-tape loader: the
// frame-classification state machine that turns a stream of paired
// 6-bit bytes (one carrying a 7th-level punch, one not) into 12-bit
// words written into the relative bank starting at P. Grounded on
// original_source/src/cdc160a/BootLoader.py, whose literal state
// transition table (a 6x3 list of lists) this package reproduces as a
// Go array rather than translating its class/enum plumbing.
package bootloader

import (
	"github.com/bdwalton/cdc160a/internal/device"
	"github.com/bdwalton/cdc160a/internal/storage"
)

// Status reports how a Load run concluded, per BootLoader.py's Status
// enum.
type Status int

const (
	Idle Status = iota
	Loading
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// state is the loader's internal frame-classification state, matching
// BootLoader.py's private __State enum.
type state int

const (
	created state = iota
	feedingLeader
	readMostSignificant
	readLeastSignificant
	bootSucceeded
	bootFailed
)

// event classifies one frame read from the boot device.
type event int

const (
	leastSignificantRead event = iota
	mostSignificantRead
	invalidValueRead
)

// transitionTable is BootLoader.py's __STATE_TRANSITION_TABLE,
// reproduced row and column for row and column: state index by event
// index.
var transitionTable = [...][3]state{
	created:              {feedingLeader, readMostSignificant, bootFailed},
	feedingLeader:        {feedingLeader, readMostSignificant, bootFailed},
	readMostSignificant:  {readLeastSignificant, bootFailed, bootFailed},
	readLeastSignificant: {bootSucceeded, readMostSignificant, bootFailed},
	bootSucceeded:        {bootFailed, bootFailed, bootFailed},
	bootFailed:           {bootFailed, bootFailed, bootFailed},
}

// BootLoader reads a boot image from a device and writes it into
// storage starting at the address already in P. Per the source's
// usage note, the caller is responsible for opening the boot image on
// the device, and for master-clearing and setting P to the start
// address beforehand; BootLoader itself only runs the frame state
// machine. Unlike internal/iounit's and internal/microop's narrow
// Storage interfaces, this package takes the concrete *storage.Storage
// directly: there is no cycle risk (internal/storage never imports
// internal/bootloader), and the loader writes directly to P and A,
// fields a narrow interface would just have to wrap in getters/setters.
type BootLoader struct {
	device  device.Device
	storage *storage.Storage

	state               state
	status              Status
	addressPreIncrement uint16
}

// New builds a BootLoader reading from device and writing into
// storage. The device should be a paper tape reader with a boot image
// already open; nothing here enforces that, matching the source's own
// unchecked assumption.
func New(d device.Device, s *storage.Storage) *BootLoader {
	return &BootLoader{device: d, storage: s, state: created, status: Idle}
}

func (b *BootLoader) Status() Status { return b.status }

// Load runs the frame state machine to completion, returning the
// final status. On success, A holds the one's-complement-ish running
// checksum of every word loaded and P holds the LWA (not LWA+1) of the
// loaded block, per the source's documented postconditions. A frame
// without the 7th-level punch arriving where the next word's high half
// could start ends the load successfully. On failure (a frame with the
// 7th-level punch where a word's low half was expected, a failed read,
// or any out-of-range frame), A and P are left wherever the last
// successful word transfer left them.
func (b *BootLoader) Load() Status {
	var memoryValue uint16

	for {
		inputValue, ev := b.readAndClassifyFrame()
		newState := transitionTable[b.state][ev]

		switch newState {
		case feedingLeader:
			// No memory effect; still hunting for the first punch.
		case readMostSignificant:
			memoryValue = (inputValue & 0o77) << 6
		case readLeastSignificant:
			memoryValue |= inputValue & 0o77
			b.storage.P += b.addressPreIncrement
			b.storage.WriteRelativeBank(b.storage.P, memoryValue)
			// Literal source behavior: a raw modulus against 0o7777,
			// not arith.Add's end-around-borrow one's-complement add.
			// The source's own comment flags this as differing from
			// the documented mod 2^12-1 checksum; preserved as-is per
			// spec section 9's instruction not to guess.
			b.storage.A = (b.storage.A + memoryValue) % 0o7777
			memoryValue = 0
			b.addressPreIncrement = 1
		case bootSucceeded:
			b.status = Succeeded
			b.state = newState
			return b.status
		case bootFailed:
			b.status = Failed
			b.state = newState
			return b.status
		}
		b.state = newState
	}
}

// readAndClassifyFrame reads one frame and classifies it as the
// least-significant half of a word (no 7th-level punch, value in
// 0o00..0o77), the most-significant half (7th-level punch, value in
// 0o100..0o177), or invalid.
func (b *BootLoader) readAndClassifyFrame() (uint16, event) {
	ok, value := b.device.Read()
	if !ok {
		return value, invalidValueRead
	}
	switch {
	case value <= 0o77:
		return value, leastSignificantRead
	case value <= 0o177:
		return value, mostSignificantRead
	default:
		return value, invalidValueRead
	}
}
