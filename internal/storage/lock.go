package storage

// LockState is the three-state interrupt lock gate described in
// spec.md section 4.2.
type LockState int

const (
	// LockFree means an interrupt may be accepted at the next
	// instruction boundary.
	LockFree LockState = iota
	// LockLocked means an interrupt was just taken (or EXC/EXF just
	// ran) and no further interrupt may be accepted.
	LockLocked
	// LockUnlockPending means CIL has run but the one-instruction
	// delay before the lock opens has not yet elapsed.
	LockUnlockPending
)

func (s LockState) String() string {
	switch s {
	case LockFree:
		return "free"
	case LockLocked:
		return "locked"
	case LockUnlockPending:
		return "unlock_pending"
	default:
		return "unknown"
	}
}

// NumInterruptLevels is the number of priority-ordered interrupt
// request lines the machine supports.
const NumInterruptLevels = 4

// SetInterruptLock transitions free -> locked. Called both by
// EXC/EXF and by the run loop's interrupt-entry step.
func (s *Storage) SetInterruptLock() {
	if s.InterruptLock == LockFree {
		s.InterruptLock = LockLocked
	}
}

// ClearInterruptLock implements the CIL instruction: locked ->
// unlock_pending. A lock that is already free or already pending is
// left alone.
func (s *Storage) ClearInterruptLock() {
	if s.InterruptLock == LockLocked {
		s.InterruptLock = LockUnlockPending
		s.logf("interrupt lock: locked -> unlock_pending")
	}
}

// TickInterruptLock implements the one-instruction delay: unlock_pending
// -> free. The run loop calls this once per instruction, after execution.
func (s *Storage) TickInterruptLock() {
	if s.InterruptLock == LockUnlockPending {
		s.InterruptLock = LockFree
		s.logf("interrupt lock: unlock_pending -> free")
	}
}

// RequestInterrupt marks an interrupt request pending at the given
// priority level (0 = highest). It is latched until the run loop
// services it.
func (s *Storage) RequestInterrupt(level int) {
	s.PendingInterrupt[level] = true
}

// HighestPendingInterrupt returns the lowest (highest-priority) pending
// interrupt level and true, or (0, false) if none is pending.
func (s *Storage) HighestPendingInterrupt() (int, bool) {
	for level := 0; level < NumInterruptLevels; level++ {
		if s.PendingInterrupt[level] {
			return level, true
		}
	}
	return 0, false
}

// AcknowledgeInterrupt clears the pending bit for level and locks the
// interrupt gate. Called by the run loop once it has pushed P and
// jumped to the handler for this level.
func (s *Storage) AcknowledgeInterrupt(level int) {
	s.PendingInterrupt[level] = false
	s.SetInterruptLock()
}

// InterruptSaveAddress and InterruptHandlerAddress are the fixed
// direct-bank locations used to save P and to dispatch to a handler
// for each priority level, per spec.md section 4.6 step 2 ("push P
// into a fixed direct-bank location per-priority, jump to the fixed
// handler address per-priority"). original_source/ does not pin these
// down (RunLoop.py's interrupt handling is entirely TODO stubs); the
// values below are this rewrite's concrete assignment, placed in low
// direct-bank memory out of the way of typical boot-loaded programs.
var interruptSaveAddress = [NumInterruptLevels]uint16{0o0001, 0o0003, 0o0005, 0o0007}
var interruptHandlerAddress = [NumInterruptLevels]uint16{0o0002, 0o0004, 0o0006, 0o0010}

// InterruptSaveAddress returns the direct-bank address used to save P
// when entering the handler for the given priority level.
func InterruptSaveAddress(level int) uint16 {
	return interruptSaveAddress[level]
}

// InterruptHandlerAddress returns the address execution resumes at
// when entering the handler for the given priority level.
func InterruptHandlerAddress(level int) uint16 {
	return interruptHandlerAddress[level]
}
