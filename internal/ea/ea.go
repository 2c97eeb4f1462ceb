// Package ea implements the ten CDC-160A effective-address modes.
// Each resolver sets S (and, for display, a storage-cycle tag) and is
// exposed as a function value so the instruction decode table
// (internal/decode) can bind one per row, per spec.md section 9's
// design note preferring a closure table to a big conditional.
// Grounded on original_source/src/cdc160a/EffectiveAddress.py.
package ea

import "github.com/bdwalton/cdc160a/internal/storage"

// Resolver sets S (and the storage-cycle tag) from the current F/E/P.
// The instruction must already have F/E unpacked (storage.UnpackInstruction).
type Resolver func(s *storage.Storage)

// NoAddress (N): S <- P, relative.
func NoAddress(s *storage.Storage) {
	s.PToS()
	s.ModeRelative()
}

// Constant (C): S <- P+1 (the G word holds the operand), relative.
func Constant(s *storage.Storage) {
	s.GAddressToS()
	s.ModeRelative()
}

// Direct (D): S <- E, direct bank.
func Direct(s *storage.Storage) {
	s.EToS()
	s.ModeDirect()
}

// Indirect (I): S <- E, indirect bank.
func Indirect(s *storage.Storage) {
	s.EToS()
	s.ModeIndirect()
}

// Memory (M): S <- word at P+1 in the relative bank.
func Memory(s *storage.Storage) {
	s.GToS()
	s.ModeRelative()
}

// RelativeForward (F): S <- P+E, relative.
func RelativeForward(s *storage.Storage) {
	s.RelativeForwardToS()
	s.ModeRelative()
}

// RelativeBackward (B): S <- P-E, relative.
func RelativeBackward(s *storage.Storage) {
	s.RelativeBackwardToS()
	s.ModeRelative()
}

// ForwardIndirect (FI): S <- word at P+E in the relative bank.
func ForwardIndirect(s *storage.Storage) {
	s.ForwardIndirectToS()
	s.ModeRelative()
}

// Specific: S <- 0o7777, bank 0.
func Specific(s *storage.Storage) {
	s.SpecificToS()
	s.ModeSpecific()
}

// ViaDirectAtE: S <- word at E in the direct bank. Caller's mode tag
// is left as whatever the caller already set, per spec.md's table
// ("(caller's mode)"), so this does not call a Mode* setter itself.
func ViaDirectAtE(s *storage.Storage) {
	s.EDirectToS()
}

// Vacuous: S unchanged.
func Vacuous(s *storage.Storage) {}
