// Package storage implements the CDC-160A register file and banked
// core memory: the state every other component of the execution
// engine reads and mutates. It is grounded on
// original_source/src/cdc160a/Storage.py and Hardware.py, generalized
// with the interrupt-lock, switch-mask, and machine-hung state that
// the Python source only sketches in RunLoop.py/Microinstructions.py
// TODO comments and spec.md section 4.2/4.6 describes in prose.
package storage

import (
	"log"
	"os"

	"github.com/bdwalton/cdc160a/internal/arith"
	"github.com/bdwalton/cdc160a/internal/storagetag"
)

// IOState mirrors the normal (synchronous) I/O channel's status,
// one of idle, input, output.
type IOState int

const (
	IOIdle IOState = iota
	IOInput
	IOOutput
)

// NumBanks and BankSize describe the 8x4096-word core.
const (
	NumBanks = 8
	BankSize = 4096
)

// Storage is the CDC-160A register file and banked core memory.
// Fields are exported so micro-ops (internal/microop) and the decode
// table can read and mutate them directly, mirroring the teacher's
// cpu struct in mos6502/mos6502.go, which keeps its registers as
// plain fields manipulated by opcode handler methods.
type Storage struct {
	Memory [NumBanks][BankSize]uint16

	A, APrime, Z uint16
	P, S         uint16
	BDR, BER, BXR uint16
	// F and E are the unpacked instruction: F the 6-bit opcode, E the
	// 6-bit address field. Named to match the source's f_instruction/
	// f_e rather than f/e, since "F" and "E" alone read badly as Go
	// identifiers next to "e" the error convention.
	FOpcode, FAddress uint16
	PunchStorage      uint8

	BufferBank, DirectBank, IndirectBank, RelativeBank uint8

	RunStop      bool
	Err          bool
	MachineHung  bool
	NormalIO     IOState
	Buffering    bool
	StorageCycle storagetag.Tag

	JumpSwitchMask, StopSwitchMask uint8

	InterruptLock    LockState
	PendingInterrupt [NumInterruptLevels]bool

	nextAddress uint16

	logger *log.Logger
}

// New builds a zeroed Storage. A nil logger defaults to stderr,
// matching the teacher's unconditional log.Fatalf/fmt.Printf use
// rather than a structured logger (no pack repo shows one).
func New(logger *log.Logger) *Storage {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Storage{logger: logger}
}

func (s *Storage) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// MasterClear resets run/error/hang status, the normal-I/O status and
// the buffering flag, and clears the interrupt lock and pending
// requests, without touching memory contents. spec.md section 5
// names master-clear as the only way to clear machine_hung; section
// 12.4 of SPEC_FULL.md assigns it this concrete shape.
func (s *Storage) MasterClear() {
	s.RunStop = false
	s.Err = false
	s.MachineHung = false
	s.NormalIO = IOIdle
	s.Buffering = false
	s.InterruptLock = LockFree
	s.PendingInterrupt = [NumInterruptLevels]bool{}
	s.logf("master clear")
}

// --- Predicates on A, per spec.md 4.4's conditional-jump rule ---

func (s *Storage) ANegative() bool { return arith.Negative(s.A) }
func (s *Storage) AZero() bool     { return s.A&arith.Mask12 == 0 }
func (s *Storage) ANotZero() bool  { return !s.AZero() }
func (s *Storage) APositive() bool { return !s.ANegative() }

// --- Run/stop/error/hang ---

func (s *Storage) Run()  { s.RunStop = true }
func (s *Storage) Stop() { s.RunStop = false }

func (s *Storage) Halt() {
	s.RunStop = false
	s.logf("halt")
}

func (s *Storage) ErrorHalt() {
	s.RunStop = false
	s.Err = true
	s.logf("error halt")
}

func (s *Storage) HangMachine() {
	s.MachineHung = true
	s.logf("machine hung")
}

// --- Next-instruction latch ---

func (s *Storage) NextAddress() uint16 { return s.nextAddress }

func (s *Storage) SetNextInstructionAddress(addr uint16) {
	s.nextAddress = addr & arith.Mask12
}

func (s *Storage) NextAfterOneWordInstruction() {
	s.nextAddress = arith.Add(s.P, 1)
}

func (s *Storage) NextAfterTwoWordInstruction() {
	s.nextAddress = arith.Add(s.P, 2)
}

func (s *Storage) AdvanceToNextInstruction() {
	s.P = s.nextAddress
}

func (s *Storage) SToNextAddress() {
	s.nextAddress = s.S
}

// --- Switch masks, set by the console before each fetch ---

// SetBuffering is the storage-side half of the buffering flag; the
// I/O subsystem flips it when it starts or stops a buffer pump (see
// internal/iounit).
func (s *Storage) SetBuffering(buffering bool) { s.Buffering = buffering }

func (s *Storage) SetJumpSwitchMask(mask uint8)  { s.JumpSwitchMask = mask & 0o7 }
func (s *Storage) SetStopSwitchMask(mask uint8)  { s.StopSwitchMask = mask & 0o7 }
func (s *Storage) AndWithJumpSwitches(mask uint8) uint8 { return mask & s.JumpSwitchMask }
func (s *Storage) AndWithStopSwitches(mask uint8) uint8 { return mask & s.StopSwitchMask }

// --- Bank control ---

func (s *Storage) SetBufferStorageBank(v uint16)   { s.BufferBank = uint8(v & 0o7) }
func (s *Storage) SetDirectStorageBank(v uint16)   { s.DirectBank = uint8(v & 0o7) }
func (s *Storage) SetIndirectStorageBank(v uint16) { s.IndirectBank = uint8(v & 0o7) }
func (s *Storage) SetRelativeStorageBank(v uint16) { s.RelativeBank = uint8(v & 0o7) }

// --- Storage-cycle tag, display only ---

func (s *Storage) ModeBuffer()   { s.StorageCycle = storagetag.Buffer }
func (s *Storage) ModeDirect()   { s.StorageCycle = storagetag.Direct }
func (s *Storage) ModeIndirect() { s.StorageCycle = storagetag.Indirect }
func (s *Storage) ModeRelative() { s.StorageCycle = storagetag.Relative }
func (s *Storage) ModeSpecific() { s.StorageCycle = storagetag.Specific }

// --- Raw bank-indexed reads/writes ---

func (s *Storage) ReadAbsolute(bank uint8, addr uint16) uint16 {
	return s.Memory[bank&0o7][addr&arith.Mask12]
}

func (s *Storage) WriteAbsolute(bank uint8, addr uint16, value uint16) {
	s.Memory[bank&0o7][addr&arith.Mask12] = value & arith.Mask12
}

func (s *Storage) ReadBufferBank(addr uint16) uint16   { return s.ReadAbsolute(s.BufferBank, addr) }
func (s *Storage) ReadDirectBank(addr uint16) uint16   { return s.ReadAbsolute(s.DirectBank, addr) }
func (s *Storage) ReadIndirectBank(addr uint16) uint16 { return s.ReadAbsolute(s.IndirectBank, addr) }
func (s *Storage) ReadRelativeBank(addr uint16) uint16 { return s.ReadAbsolute(s.RelativeBank, addr) }
func (s *Storage) ReadSpecific() uint16                { return s.ReadAbsolute(0, 0o7777) }

func (s *Storage) WriteBufferBank(addr, value uint16)   { s.WriteAbsolute(s.BufferBank, addr, value) }
func (s *Storage) WriteDirectBank(addr, value uint16)   { s.WriteAbsolute(s.DirectBank, addr, value) }
func (s *Storage) WriteIndirectBank(addr, value uint16) { s.WriteAbsolute(s.IndirectBank, addr, value) }
func (s *Storage) WriteRelativeBank(addr, value uint16) { s.WriteAbsolute(s.RelativeBank, addr, value) }
func (s *Storage) WriteSpecific(value uint16)           { s.WriteAbsolute(0, 0o7777, value) }

func (s *Storage) ReadDirectFromS() uint16   { return s.ReadDirectBank(s.S) }
func (s *Storage) ReadIndirectFromS() uint16 { return s.ReadIndirectBank(s.S) }
func (s *Storage) ReadRelativeFromS() uint16 { return s.ReadRelativeBank(s.S) }

func (s *Storage) SetSAndReadIndirect(addr uint16) uint16 {
	s.S = addr & arith.Mask12
	return s.ReadIndirectBank(s.S)
}

// --- Register transfers used by micro-ops ---

func (s *Storage) AToZ()     { s.Z = s.A }
func (s *Storage) ZToA()     { s.A = s.Z }
func (s *Storage) PToS()     { s.S = s.P }
func (s *Storage) SToP()     { s.P = s.S & arith.Mask12 }
func (s *Storage) EToS()     { s.S = s.FAddress }
func (s *Storage) EToZ()     { s.Z = s.FAddress }
func (s *Storage) ComplementA() { s.A = s.A ^ arith.Mask12 }

func (s *Storage) PPlusOneToS() { s.S = arith.Add(s.P, 1) }
func (s *Storage) GAddressToS() { s.S = arith.Add(s.P, 1) }

func (s *Storage) GToS() {
	s.S = s.ReadRelativeBank(arith.Add(s.P, 1))
}

func (s *Storage) GToZ() {
	s.S = arith.Add(s.P, 1)
	s.Z = s.ReadRelativeBank(s.S)
}

func (s *Storage) SpecificToS() { s.S = 0o7777 }

func (s *Storage) RelativeForwardToS()  { s.S = arith.Add(s.P, s.FAddress) }
func (s *Storage) RelativeBackwardToS() { s.S = arith.Subtract(s.P, s.FAddress) }

func (s *Storage) ForwardIndirectToS() {
	s.S = s.ReadRelativeBank(arith.Add(s.P, s.FAddress))
}

// EDirectToS reads the word at address E in the direct bank and
// treats it as the new effective address, per EffectiveAddress.py's
// via_direct_at_e mode.
func (s *Storage) EDirectToS() {
	s.S = s.ReadDirectBank(s.FAddress)
}

// UnpackInstruction fetches the word at P from the relative bank,
// splits it into F/E, and copies P into S, per spec.md section 4.2.
func (s *Storage) UnpackInstruction() {
	s.PToS()
	s.Z = s.ReadRelativeBank(s.S)
	s.FAddress = s.Z & 0o77
	s.FOpcode = (s.Z >> 6) & 0o77
}

// --- S-bank stores used by the store-family micro-ops ---

func (s *Storage) AToSBuffer() {
	s.AToZ()
	s.WriteBufferBank(s.S, s.A)
}

func (s *Storage) AToSDirect() {
	s.AToZ()
	s.WriteDirectBank(s.S, s.A)
}

func (s *Storage) AToSIndirect() {
	s.AToZ()
	s.WriteIndirectBank(s.S, s.Z)
}

func (s *Storage) AToSRelative() {
	s.AToZ()
	s.WriteRelativeBank(s.S, s.Z)
}

func (s *Storage) SDirectToA()   { s.A = s.ReadDirectFromS() }
func (s *Storage) SIndirectToA() { s.A = s.ReadIndirectFromS() }
func (s *Storage) SRelativeToA() { s.A = s.ReadRelativeFromS() }

func (s *Storage) SDirectToZ()   { s.Z = s.ReadDirectFromS() }
func (s *Storage) SIndirectToZ() { s.Z = s.ReadIndirectFromS() }
func (s *Storage) SRelativeToZ() { s.Z = s.ReadRelativeFromS() }
