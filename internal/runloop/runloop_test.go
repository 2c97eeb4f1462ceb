package runloop

import (
	"testing"

	"github.com/bdwalton/cdc160a/internal/iounit"
	"github.com/bdwalton/cdc160a/internal/machine"
	"github.com/bdwalton/cdc160a/internal/storage"
)

// stubConsole never blocks and, by default, always lets the loop
// continue; tests override the funcs to exercise specific hooks.
type stubConsole struct {
	onFetch  func(*storage.Storage, *iounit.IOUnit)
	onLogic  func(*storage.Storage, *iounit.IOUnit)
	onAdvance func(*storage.Storage, *iounit.IOUnit) bool
}

func (c *stubConsole) BeforeInstructionFetch(s *storage.Storage, io *iounit.IOUnit) {
	if c.onFetch != nil {
		c.onFetch(s, io)
	}
}

func (c *stubConsole) BeforeInstructionLogic(s *storage.Storage, io *iounit.IOUnit) {
	if c.onLogic != nil {
		c.onLogic(s, io)
	}
}

func (c *stubConsole) BeforeAdvance(s *storage.Storage, io *iounit.IOUnit) bool {
	if c.onAdvance != nil {
		return c.onAdvance(s, io)
	}
	return true
}

func newHardware() *machine.Hardware {
	return machine.New(storage.New(nil), iounit.New())
}

func TestTickRunsOneInstructionThenHalts(t *testing.T) {
	h := newHardware()
	h.Storage.P = 0o0100
	h.Storage.RelativeBank = 3
	h.Storage.WriteRelativeBank(0o0100, 0o2200)
	h.Storage.WriteRelativeBank(0o0101, 0o4321)
	h.Storage.WriteRelativeBank(0o0102, 0o7700)
	h.Storage.Run()

	console := &stubConsole{}
	rl := New(h, console)

	if !rl.Tick() {
		t.Fatal("Tick() should continue after LDC")
	}
	if h.Storage.A != 0o4321 {
		t.Fatalf("A = %o, want 4321", h.Storage.A)
	}
	if h.Storage.P != 0o0102 {
		t.Fatalf("P = %o, want 0102", h.Storage.P)
	}

	if !rl.Tick() {
		t.Fatal("Tick() should continue after HLT")
	}
	if h.Storage.RunStop {
		t.Fatal("RunStop should be false after HLT")
	}
}

func TestTickDoesNothingWhileStoppedAndConsoleLeavesItStopped(t *testing.T) {
	h := newHardware()
	h.Storage.P = 0o0100
	h.Storage.WriteRelativeBank(0o0100, 0o7700) // HLT, should never execute
	console := &stubConsole{}
	rl := New(h, console)

	if !rl.Tick() {
		t.Fatal("Tick() should report true even while stopped")
	}
	if h.Storage.P != 0o0100 {
		t.Fatal("P should not move while the machine stays stopped")
	}
}

func TestTickEntersInterruptBeforeFetch(t *testing.T) {
	h := newHardware()
	h.Storage.P = 0o0100
	h.Storage.Run()
	h.Storage.RequestInterrupt(1)
	console := &stubConsole{}
	rl := New(h, console)

	if !rl.Tick() {
		t.Fatal("Tick() should continue after interrupt entry")
	}
	if h.Storage.P != storage.InterruptHandlerAddress(1) {
		t.Fatalf("P = %o, want handler address %o", h.Storage.P, storage.InterruptHandlerAddress(1))
	}
	if got := h.Storage.ReadDirectBank(storage.InterruptSaveAddress(1)); got != 0o0100 {
		t.Fatalf("saved P = %o, want 0100", got)
	}
	if h.Storage.InterruptLock != storage.LockLocked {
		t.Fatalf("lock = %v, want locked", h.Storage.InterruptLock)
	}
	if pending, ok := h.Storage.HighestPendingInterrupt(); ok {
		t.Fatalf("interrupt level %d still pending", pending)
	}
}

func TestTickHonorsBeforeInstructionLogicStop(t *testing.T) {
	h := newHardware()
	h.Storage.P = 0o0100
	h.Storage.RelativeBank = 3
	h.Storage.WriteRelativeBank(0o0100, 0o2200)
	h.Storage.WriteRelativeBank(0o0101, 0o4321)
	h.Storage.Run()

	console := &stubConsole{
		onLogic: func(s *storage.Storage, io *iounit.IOUnit) { s.Stop() },
	}
	rl := New(h, console)

	if !rl.Tick() {
		t.Fatal("Tick() should report true even when logic-gate stops the machine")
	}
	if h.Storage.A != 0 {
		t.Fatal("the micro-op should not have run once before_instruction_logic stopped the machine")
	}
}

func TestTickHonorsBeforeAdvanceFalse(t *testing.T) {
	h := newHardware()
	h.Storage.P = 0o0100
	h.Storage.RelativeBank = 3
	h.Storage.WriteRelativeBank(0o0100, 0o2200)
	h.Storage.WriteRelativeBank(0o0101, 0o4321)
	h.Storage.Run()

	console := &stubConsole{onAdvance: func(*storage.Storage, *iounit.IOUnit) bool { return false }}
	rl := New(h, console)

	if rl.Tick() {
		t.Fatal("Tick() should report false when before_advance stops the loop")
	}
	if h.Storage.P != 0o0100 {
		t.Fatal("P should not have advanced once the loop was told to stop")
	}
}
