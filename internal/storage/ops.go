package storage

import "github.com/bdwalton/cdc160a/internal/arith"

// This file holds the higher-level Storage operations spec.md section
// 4.2 describes ("load A from S in bank B, store A to S in bank B,
// AND/XOR A with value at S in bank B, add-from-memory,
// subtract-from-memory, rotates, shifts, multiply by 10/100") and the
// handful of buffer-register and bank-control helpers
// original_source/src/cdc160a/Microinstructions.py calls on its
// `storage` argument. Keeping them here, rather than in the micro-op
// layer, mirrors the source's own split: Microinstructions.py's
// functions are themselves thin forwarders to Storage methods for
// anything non-trivial.

// --- Arithmetic into A ---

func (s *Storage) AddToA(value uint16) { s.A = arith.Add(s.A, value) }

func (s *Storage) AddEToA() { s.A = arith.Add(s.A, s.FAddress) }

func (s *Storage) AddSAddressToA(bank uint8) {
	s.A = arith.Add(s.A, s.ReadAbsolute(bank, s.S))
}

func (s *Storage) SubtractEFromA() { s.A = arith.Subtract(s.A, s.FAddress) }

func (s *Storage) SubtractSAddressFromA(bank uint8) {
	s.A = arith.Subtract(s.A, s.ReadAbsolute(bank, s.S))
}

func (s *Storage) SubtractSpecificFromA() { s.SubtractSAddressFromA(0) }

func (s *Storage) StoreA(bank uint8) { s.WriteAbsolute(bank, s.S, s.A) }

// --- Logical ---

func (s *Storage) XorAWithZ() { s.A ^= s.Z }

func (s *Storage) AndEWithA() { s.A &= s.FAddress }

func (s *Storage) AndSAddressWithA(bank uint8) {
	s.A &= s.ReadAbsolute(bank, s.S)
}

func (s *Storage) AndSpecificWithA() { s.AndSAddressWithA(0) }

// --- Specific (bank 0, 0o7777) register-style helpers ---

func (s *Storage) SpecificToA()   { s.A = s.ReadSpecific() }
func (s *Storage) SpecificToZ()   { s.Z = s.ReadSpecific() }
func (s *Storage) AToSpecific()   { s.AToZ(); s.WriteSpecific(s.Z) }
func (s *Storage) SRelativeAddressContents() uint16 { return s.ReadRelativeFromS() }

// --- Shifts and rotates (left rotate, right arithmetic shift) ---

func (s *Storage) RotateALeftOne() {
	endAround := uint16(0)
	if s.A&0o4000 != 0 {
		endAround = 1
	}
	s.A = ((s.A << 1) & arith.Mask12) | endAround
}

func (s *Storage) RotateALeftTwo() {
	endAround := (s.A & 0o6000) >> 10
	s.A = ((s.A << 2) & arith.Mask12) | endAround
}

func (s *Storage) RotateALeftThree() {
	endAround := (s.A & 0o7000) >> 9
	s.A = ((s.A << 3) & arith.Mask12) | endAround
}

func (s *Storage) RotateALeftSix() {
	endAround := (s.A & 0o7700) >> 6
	s.A = ((s.A << 6) & arith.Mask12) | endAround
}

func (s *Storage) ShiftARightOne() {
	signExtension := s.A & 0o4000
	s.A = (s.A >> 1) | signExtension
}

func (s *Storage) ShiftARightTwo() {
	var signExtension uint16
	if s.A&0o4000 != 0 {
		signExtension = 0o6000
	}
	s.A = (s.A >> 2) | signExtension
}

// --- Multiply by 10/100, per the source's comment that these are
// built from shifts and adds rather than a native multiply. ---

func (s *Storage) ATimes10() {
	// x*10 = x*8 + x*2 = (x<<3) + (x<<1), truncated to 12 bits the way
	// a fixed-width shift register would, accumulated with one's
	// complement add. original_source/ declares this operation
	// (Arithmetic.py's docstring, Microinstructions.py's
	// multiply_a_by_10) but never supplies a body for it; this
	// construction is this rewrite's own, built the way the source's
	// own comments say it should be: shifts and adds.
	times8 := (s.A << 3) & arith.Mask12
	times2 := (s.A << 1) & arith.Mask12
	s.A = arith.Add(times8, times2)
}

func (s *Storage) ATimes100() {
	s.ATimes10()
	s.ATimes10()
}

// --- Bank control, set from low 3 bits of E ---

func (s *Storage) SetBufferBankFromE()   { s.SetBufferStorageBank(s.FAddress) }
func (s *Storage) SetDirectBankFromE()   { s.SetDirectStorageBank(s.FAddress) }
func (s *Storage) SetIndirectBankFromE() { s.SetIndirectStorageBank(s.FAddress) }

// SetRelativeBankFromEAndJump sets the relative bank from the low 3
// bits of E, then jumps to [A] in the newly selected relative bank,
// per Microinstructions.py's set_rel_bank_from_e_and_jump family.
func (s *Storage) SetRelativeBankFromEAndJump() {
	s.SetRelativeStorageBank(s.FAddress)
	s.SetNextInstructionAddress(s.A & arith.Mask12)
}

// BankControlsToA packs the four 3-bit bank-control registers into A
// as buffer|direct|indirect|relative, most significant first.
func (s *Storage) BankControlsToA() {
	s.A = uint16(s.BufferBank)<<9 | uint16(s.DirectBank)<<6 |
		uint16(s.IndirectBank)<<3 | uint16(s.RelativeBank)
}

// --- Jumps ---

func (s *Storage) PToA()  { s.A = s.P }
func (s *Storage) ZToNextAddress() { s.SetNextInstructionAddress(s.Z) }

func (s *Storage) SRelativeToNextAddress() {
	s.SetNextInstructionAddress(s.ReadRelativeFromS())
}

func (s *Storage) DirectToZ(addr uint16) { s.Z = s.ReadDirectBank(addr) }

func (s *Storage) GToNextAddress() {
	s.SetNextInstructionAddress(s.ReadRelativeBank(arith.Add(s.P, 1)))
}

func (s *Storage) GContents() uint16 { return s.ReadRelativeBank(arith.Add(s.P, 1)) }

// ValueToSAddressRelative writes value to [S] in the relative bank;
// used by ReturnJump to store the return address.
func (s *Storage) ValueToSAddressRelative(value uint16) {
	s.WriteRelativeBank(s.S, value)
}

// PToEDirect stores P at [E] in the direct bank, per Microinstructions
// .py's p_to_e_direct, used by instructions that record a return
// address directly from E rather than via the return-jump sequence.
func (s *Storage) PToEDirect() { s.WriteDirectBank(s.FAddress, s.P) }

// --- Buffer registers (BER/BXR/BDR) ---

func (s *Storage) AToBufferEntranceRegister() { s.BER = s.A & arith.Mask12 }
func (s *Storage) AToBufferExitRegister()     { s.BXR = s.A & arith.Mask12 }
func (s *Storage) BufferEntranceToA()         { s.A = s.BER }
func (s *Storage) BufferExitToA()             { s.A = s.BXR }
func (s *Storage) AToBufferDataRegister()     { s.BDR = s.A & arith.Mask12 }

func (s *Storage) BufferEntranceRegisterToDirectStorage() {
	s.WriteDirectBank(s.FAddress, s.BER)
}

// HalfWriteToSIndirect writes the low 6 bits of E to [S] in the
// indirect bank, leaving the high 6 bits of the destination word
// untouched, per Microinstructions.py's half_write_indirect.
func (s *Storage) HalfWriteToSIndirect() {
	existing := s.ReadIndirectFromS()
	updated := (existing &^ 0o77) | (s.FAddress & 0o77)
	s.WriteIndirectBank(s.S, updated)
}

// StartBuffering/StopBuffering toggle the buffering flag around a
// synchronous block-store fast-fill; see microop.BlockStore.
func (s *Storage) StartBuffering() { s.Buffering = true }
func (s *Storage) StopBuffering()  { s.Buffering = false }

// BufferDataToMemory writes BDR to [BER] in the buffer bank and
// increments BER, returning true while BER has not yet reached BXR.
// Used by the synchronous block-store micro-op, which calls this in a
// loop (Microinstructions.py's block_store: "while
// storage.buffer_data_to_memory(): cycles_used += 1").
func (s *Storage) BufferDataToMemory() bool {
	if s.BER == s.BXR {
		return false
	}
	s.WriteBufferBank(s.BER, s.BDR)
	s.BER = arith.Add(s.BER, 1)
	return s.BER != s.BXR
}

// BufferDataRegister/SetBufferDataRegister expose BDR for the buffer
// pump package (internal/bufferpump), which cannot import this
// package directly (see its Storage interface).
func (s *Storage) BufferDataRegister() uint16        { return s.BDR }
func (s *Storage) SetBufferDataRegister(value uint16) { s.BDR = value & arith.Mask12 }

// MemoryToBufferData reads [BER] in the buffer bank into BDR and
// advances BER, returning true while BER has not yet reached BXR.
// The output-pump counterpart to BufferDataToMemory.
func (s *Storage) MemoryToBufferData() bool {
	if s.BER == s.BXR {
		return false
	}
	s.BDR = s.ReadBufferBank(s.BER)
	s.BER = arith.Add(s.BER, 1)
	return s.BER != s.BXR
}

// --- Normal (synchronous) I/O status bookkeeping ---

func (s *Storage) NormalInputActive()  { s.NormalIO = IOInput }
func (s *Storage) NormalOutputActive() { s.NormalIO = IOOutput }
func (s *Storage) NormalIdle()         { s.NormalIO = IOIdle }

// IndefiniteDelay marks the machine hung, the run loop's response to a
// synchronous I/O operation that cannot complete (no device selected,
// or the selected device reports offline), per spec.md section 7.
func (s *Storage) IndefiniteDelay() { s.HangMachine() }

// StoreAtSIndirectAndIncrementS writes value to [S] in the indirect
// bank and advances S by one, used by the synchronous block-input
// micro-op.
func (s *Storage) StoreAtSIndirectAndIncrementS(value uint16) {
	s.WriteIndirectBank(s.S, value)
	s.S = arith.Add(s.S, 1)
}

// ReadFromSIndirectAndIncrementS reads [S] in the indirect bank and
// advances S by one, used by the synchronous block-output micro-op.
func (s *Storage) ReadFromSIndirectAndIncrementS() uint16 {
	v := s.ReadIndirectFromS()
	s.S = arith.Add(s.S, 1)
	return v
}
