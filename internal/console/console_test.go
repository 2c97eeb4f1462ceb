package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bdwalton/cdc160a/internal/device"
	"github.com/bdwalton/cdc160a/internal/iounit"
	"github.com/bdwalton/cdc160a/internal/storage"
)

func newFixture(script string) (*Console, *storage.Storage, *iounit.IOUnit) {
	c := New(strings.NewReader(script), &bytes.Buffer{}, nil)
	return c, storage.New(nil), iounit.New()
}

func TestSwitchMasks(t *testing.T) {
	c, _, _ := newFixture("")
	c.switches[0] = Up
	c.switches[1] = Down
	c.switches[2] = Center
	if got := c.JumpSwitchMask(); got != 0o1 {
		t.Errorf("JumpSwitchMask = %o, want 1", got)
	}
	if got := c.StopSwitchMask(); got != 0o2 {
		t.Errorf("StopSwitchMask = %o, want 2", got)
	}
}

func TestDispatchRunAndHalt(t *testing.T) {
	c, s, io := newFixture("")
	c.dispatch("run", s, io)
	if !s.RunStop {
		t.Fatal("run should set RunStop")
	}
	c.dispatch("halt", s, io)
	if s.RunStop {
		t.Fatal("halt should clear RunStop")
	}
}

func TestDispatchSetRegisters(t *testing.T) {
	c, s, io := newFixture("")
	c.dispatch("seta 1234", s, io)
	if s.A != 0o1234 {
		t.Errorf("A = %o, want 1234", s.A)
	}
	c.dispatch("setp 0100", s, io)
	if s.P != 0o0100 {
		t.Errorf("P = %o, want 0100", s.P)
	}
	c.dispatch("setd 5", s, io)
	if s.DirectBank != 5 {
		t.Errorf("DirectBank = %o, want 5", s.DirectBank)
	}
}

func TestDispatchSwitchCommands(t *testing.T) {
	c, s, io := newFixture("")
	c.dispatch("jump2 up", s, io)
	if c.switches[1] != Up {
		t.Errorf("switch 2 = %v, want Up", c.switches[1])
	}
	c.dispatch("stop2 down", s, io)
	if c.switches[1] != Down {
		t.Errorf("switch 2 = %v, want Down", c.switches[1])
	}
}

func TestDispatchMasterClear(t *testing.T) {
	c, s, _ := newFixture("")
	io := iounit.New(device.NewNullDevice())
	s.WriteRelativeBank(0o0100, 0o1234)
	s.HangMachine()
	io.ExternalFunction(device.NullFunctionCode)

	c.dispatch("masterclear", s, io)

	if s.MachineHung {
		t.Fatal("masterclear should clear machine_hung")
	}
	if got := s.ReadRelativeBank(0o0100); got != 0o1234 {
		t.Fatalf("masterclear must not touch memory; got %o, want 1234", got)
	}
	if io.DeviceOnNormalChannel() != nil {
		t.Fatal("masterclear should drop the selected normal-channel device")
	}
}

func TestBeforeInstructionFetchStoppedThenRun(t *testing.T) {
	c, s, io := newFixture("run\n")
	c.BeforeInstructionFetch(s, io)
	if !s.RunStop {
		t.Fatal("expected the script's 'run' command to start the machine")
	}
}

func TestBeforeInstructionFetchExitOnEOF(t *testing.T) {
	c, s, io := newFixture("")
	c.BeforeInstructionFetch(s, io)
	if !c.Exiting() {
		t.Fatal("expected Exiting() once the input stream is exhausted")
	}
}

func TestBeforeAdvanceClearsSingleStep(t *testing.T) {
	c, s, io := newFixture("")
	s.Run()
	c.singleStep = true
	if !c.BeforeAdvance(s, io) {
		t.Fatal("BeforeAdvance must always return true for a production console")
	}
	if s.RunStop {
		t.Fatal("single step should have stopped the machine")
	}
	if c.singleStep {
		t.Fatal("singleStep flag should be cleared")
	}
}
