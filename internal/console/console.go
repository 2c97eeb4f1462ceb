// Package console implements the CDC-160A operator console: the
// run/stop front panel and the three run-loop hooks (before_instruction_
// fetch, before_instruction_logic, before_advance) described in
// spec.md section 4.9. original_source/src/cdc160a/BaseConsole.py
// and Console.py are themselves a skeleton (Console.py is never
// referenced by RunLoop.py and implements none of the base class's
// abstract methods); this package supplies the concrete line-mode
// implementation spec.md section 6 names as the CLI surface, grounded
// structurally on mos6502/mos6502.go's BIOS menu loop: a blocking
// command prompt shown whenever the machine is stopped, generalized so
// a running machine can still be interrupted without a blocking read,
// since the run loop polls this console once per instruction rather
// than owning it the way BIOS owns the 6502's run loop. Each line the
// operator types is parsed and executed as a cobra command, per
// SPEC_FULL.md section 11's commitment to cobra powering this surface
// (the same library cmd/cdc160a uses for process-level flags), the way
// oisee-z80-optimizer's cmd/z80opt/main.go builds one command tree and
// runs it against a line of input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/bdwalton/cdc160a/internal/bootloader"
	"github.com/bdwalton/cdc160a/internal/device"
	"github.com/bdwalton/cdc160a/internal/iounit"
	"github.com/bdwalton/cdc160a/internal/storage"
	"github.com/spf13/cobra"
)

// SwitchPosition is one of the CDC-160A's three-position jump/stop
// switches. Up arms the jump test for that switch; Down arms the stop
// test; Center arms neither. spec.md section 6 names "jump{1,2,3}
// {up|center|down}" and "stop{1,2,3} {up|center|down}" as separate
// command families, but the reference manual's jump_switch_mask and
// stop_switch_mask are read from the same three physical switches, so
// this package treats "jumpN" and "stopN" as two names for setting the
// same underlying switch.
type SwitchPosition int

const (
	Center SwitchPosition = iota
	Up
	Down
)

func (p SwitchPosition) String() string {
	switch p {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "center"
	}
}

func parseSwitchPosition(s string) (SwitchPosition, bool) {
	switch strings.ToLower(s) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "center":
		return Center, true
	default:
		return 0, false
	}
}

// Console is the concrete BaseConsole implementation: a line-oriented
// front panel reading commands from in and writing prompts/state to
// out, dispatching each line through a cobra command tree built once
// in New.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
	root   *cobra.Command

	// curStorage/curIO are the hardware the currently-executing cobra
	// command should act on. Set just before Execute() on every
	// dispatched line; every subcommand's RunE closes over these
	// fields rather than over function parameters, since the command
	// tree itself is built exactly once.
	curStorage *storage.Storage
	curIO      *iounit.IOUnit

	switches [3]SwitchPosition

	singleStep bool
	exiting    bool

	sigQuit chan os.Signal

	// bootDevice supports the "assemble" command's narrower stand-in:
	// loading a paper-tape boot image. spec.md section 1 places the
	// developer's assembler itself out of scope; this package only
	// exposes the boot loader that a real assembler's output would
	// eventually run through.
	bootDevice device.Device
}

// New builds a Console reading commands from in and writing to out. A
// nil logger defaults to stderr, matching storage.New's convention.
func New(in io.Reader, out io.Writer, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)
	c := &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		sigQuit: sigQuit,
	}
	c.root = c.buildCommands()
	return c
}

// AttachBootDevice designates the device the "assemble" command's boot
// stand-in loads from. Typically a paper-tape reader opened on an
// already-assembled program image.
func (c *Console) AttachBootDevice(d device.Device) {
	c.bootDevice = d
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// JumpSwitchMask and StopSwitchMask derive the two 3-bit masks from
// the three physical switch positions.
func (c *Console) JumpSwitchMask() uint8 {
	var mask uint8
	for i, p := range c.switches {
		if p == Up {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

func (c *Console) StopSwitchMask() uint8 {
	var mask uint8
	for i, p := range c.switches {
		if p == Down {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// BeforeInstructionFetch implements the run loop's step 1 hook. While
// the machine is running it only refreshes the switch masks and checks
// for an asynchronous interrupt (Ctrl-C) without blocking; while
// stopped it shows the prompt and blocks reading commands until one
// restarts the machine or the operator exits, matching
// spec.md section 4.9's "refreshes jump/stop masks and may block until
// the user resumes."
func (c *Console) BeforeInstructionFetch(s *storage.Storage, iou *iounit.IOUnit) {
	s.SetJumpSwitchMask(c.JumpSwitchMask())
	s.SetStopSwitchMask(c.StopSwitchMask())

	if s.RunStop {
		select {
		case <-c.sigQuit:
			s.Stop()
			c.printf("\ninterrupted\n")
		default:
		}
		return
	}

	for !s.RunStop && !c.exiting {
		c.printPrompt(s)
		if !c.in.Scan() {
			c.exiting = true
			return
		}
		c.dispatch(strings.TrimSpace(c.in.Text()), s, iou)
		s.SetJumpSwitchMask(c.JumpSwitchMask())
		s.SetStopSwitchMask(c.StopSwitchMask())
	}
}

// BeforeInstructionLogic implements step 5: nothing further to gate on
// here since the single-step and halt commands already act on
// RunStop directly through dispatch, but the hook still exists so
// future console features (breakpoints on effective address) have a
// seam.
func (c *Console) BeforeInstructionLogic(s *storage.Storage, iou *iounit.IOUnit) {}

// BeforeAdvance implements step 9. A single-step request set RunStop
// true for exactly one instruction; clear it again now so the console
// prompts again before the next fetch. Always returns true: this is a
// production console, not a test harness, per spec.md section 4.9's
// "production implementations must always return true."
func (c *Console) BeforeAdvance(s *storage.Storage, iou *iounit.IOUnit) bool {
	if c.singleStep {
		s.Stop()
		c.singleStep = false
	}
	return true
}

// Exiting reports whether the operator has issued "exit" or closed
// the input stream; runloop.RunLoop.Run checks this to know when to
// return.
func (c *Console) Exiting() bool { return c.exiting }

func (c *Console) printPrompt(s *storage.Storage) {
	c.printf("\nP=%04o A=%04o A'=%04o Z=%04o S=%04o  run=%v err=%v hung=%v lock=%s\n",
		s.P, s.A, s.APrime, s.Z, s.S, s.RunStop, s.Err, s.MachineHung, s.InterruptLock)
	c.printf("banks: buf=%o dir=%o ind=%o rel=%o\n", s.BufferBank, s.DirectBank, s.IndirectBank, s.RelativeBank)
	c.printf("commands: assemble <path>, run, halt, step, set{a,b,d,i,p,r} <octal>, jump{1,2,3} {up|center|down}, stop{1,2,3} {up|center|down}, masterclear, exit\n> ")
}

// dispatch runs one command line through the cobra tree, per spec.md
// section 6's CLI surface.
func (c *Console) dispatch(line string, s *storage.Storage, iou *iounit.IOUnit) {
	if line == "" {
		return
	}
	c.curStorage = s
	c.curIO = iou
	c.root.SetArgs(strings.Fields(line))
	if err := c.root.Execute(); err != nil {
		c.printf("error: %v\n", err)
	}
}

// buildCommands constructs the cobra command tree exactly once. Every
// RunE reads c.curStorage/c.curIO rather than a captured parameter,
// since the tree is long-lived but the hardware it acts on is only
// known at dispatch time.
func (c *Console) buildCommands() *cobra.Command {
	root := &cobra.Command{Use: "console", SilenceUsage: true, SilenceErrors: true}
	root.SetOut(c.out)
	root.SetErr(c.out)

	root.AddCommand(
		&cobra.Command{
			Use:  "exit",
			Args: cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				c.exiting = true
				c.curStorage.Stop()
				return nil
			},
		},
		&cobra.Command{
			Use:  "run",
			Args: cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				c.curStorage.Run()
				return nil
			},
		},
		&cobra.Command{
			Use:  "halt",
			Args: cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				c.curStorage.Stop()
				return nil
			},
		},
		&cobra.Command{
			Use:  "step",
			Args: cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				c.singleStep = true
				c.curStorage.Run()
				return nil
			},
		},
		&cobra.Command{
			Use:  "assemble <path>",
			Args: cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return c.cmdAssemble(args[0])
			},
		},
		&cobra.Command{
			Use:  "masterclear",
			Args: cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				c.curStorage.MasterClear()
				c.curIO.Clear()
				return nil
			},
		},
	)

	for _, reg := range []byte{'a', 'b', 'd', 'i', 'p', 'r'} {
		reg := reg
		root.AddCommand(&cobra.Command{
			Use:  "set" + string(reg) + " <octal>",
			Args: cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return c.cmdSet(reg, args[0])
			},
		})
	}

	for _, family := range []string{"jump", "stop"} {
		family := family
		for _, digit := range []byte{'1', '2', '3'} {
			digit := digit
			root.AddCommand(&cobra.Command{
				Use:  family + string(digit) + " {up|center|down}",
				Args: cobra.ExactArgs(1),
				RunE: func(_ *cobra.Command, args []string) error {
					return c.cmdSwitch(digit, args[0])
				},
			})
		}
	}

	return root
}

func (c *Console) cmdAssemble(path string) error {
	if c.bootDevice == nil {
		return fmt.Errorf("no boot device attached; cannot assemble %s", path)
	}
	bl := bootloader.New(c.bootDevice, c.curStorage)
	status := bl.Load()
	c.printf("boot load %s: %s\n", path, status)
	return nil
}

func (c *Console) cmdSet(reg byte, value string) error {
	v, err := strconv.ParseUint(value, 8, 16)
	if err != nil {
		return fmt.Errorf("bad octal value %q: %w", value, err)
	}
	s := c.curStorage
	switch reg {
	case 'a':
		s.A = uint16(v) & 0o7777
	case 'b':
		s.SetBufferStorageBank(uint16(v))
	case 'd':
		s.SetDirectStorageBank(uint16(v))
	case 'i':
		s.SetIndirectStorageBank(uint16(v))
	case 'p':
		s.P = uint16(v) & 0o7777
		s.SetNextInstructionAddress(uint16(v))
	case 'r':
		s.SetRelativeStorageBank(uint16(v))
	}
	return nil
}

func (c *Console) cmdSwitch(digit byte, value string) error {
	pos, ok := parseSwitchPosition(value)
	if !ok {
		return fmt.Errorf("bad switch position %q", value)
	}
	c.switches[digit-'1'] = pos
	return nil
}
