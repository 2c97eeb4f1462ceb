// Command cdc160a is the CDC-160A execution engine's development
// console entry point: it wires a Storage, an IOUnit, a RunLoop, and
// the line-oriented Console together and drives the machine until the
// operator exits. Grounded structurally on gintendo.go's main(),
// generalized from a single -nes_rom flag to cobra persistent flags
// (spec.md section 10.3/11), since this core has no framebuffer for
// ebiten.RunGame to drive.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/bdwalton/cdc160a/internal/bootloader"
	"github.com/bdwalton/cdc160a/internal/console"
	"github.com/bdwalton/cdc160a/internal/device"
	"github.com/bdwalton/cdc160a/internal/iounit"
	"github.com/bdwalton/cdc160a/internal/machine"
	"github.com/bdwalton/cdc160a/internal/runloop"
	"github.com/bdwalton/cdc160a/internal/storage"
	"github.com/spf13/cobra"
)

var (
	bootTapePath    string
	readerTapePath  string
	punchTapePath   string
	jumpSwitchesOct string
	stopSwitchesOct string
)

func main() {
	root := &cobra.Command{
		Use:   "cdc160a",
		Short: "CDC-160A execution engine development console",
		RunE:  run,
	}
	root.PersistentFlags().StringVar(&bootTapePath, "boot-tape", "", "paper-tape boot image to auto-load at startup")
	root.PersistentFlags().StringVar(&readerTapePath, "reader-tape", "", "backing file for the paper-tape reader device")
	root.PersistentFlags().StringVar(&punchTapePath, "punch-tape", "", "backing file for the paper-tape punch device")
	root.PersistentFlags().StringVar(&jumpSwitchesOct, "jump-switches", "0", "initial jump-switch mask, octal")
	root.PersistentFlags().StringVar(&stopSwitchesOct, "stop-switches", "0", "initial stop-switch mask, octal")

	if err := root.Execute(); err != nil {
		log.Fatalf("cdc160a: %v", err)
	}
}

// run builds the machine and hands it to the console loop. Matching
// spec.md section 6's exit-code contract ("0 on clean quit, nonzero
// on unrecoverable assembler or I/O failure"), a construction failure
// here (e.g. an unreadable --reader-tape) or a failed --boot-tape
// auto-load is the only path that produces a nonzero exit;
// everything the running machine itself does
// (halt, error halt, machine-hung) stays a Storage flag, never a
// process exit code, per section 10.2.
func run(cmd *cobra.Command, args []string) error {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	s := storage.New(logger)

	devices, bootDevice, err := buildDevices(logger)
	if err != nil {
		return fmt.Errorf("building devices: %w", err)
	}
	io := iounit.New(devices...)
	hw := machine.New(s, io)

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	if bootDevice != nil {
		con.AttachBootDevice(bootDevice)
	}

	if bootTapePath != "" {
		bl := bootloader.New(bootDevice, s)
		if status := bl.Load(); status != bootloader.Succeeded {
			return fmt.Errorf("auto-loading boot tape %s: %s", bootTapePath, status)
		}
	}

	applySwitchFlags(s)

	loop := runloop.New(hw, con)
	loop.Run()
	return nil
}

// buildDevices constructs the paper-tape reader/punch named by
// --reader-tape/--punch-tape (when given), plus the always-present
// null device, and reports which device (if any) should serve as the
// console's boot-tape stand-in.
func buildDevices(logger *log.Logger) ([]device.Device, device.Device, error) {
	devices := []device.Device{device.NewNullDevice()}

	var bootDevice device.Device
	if readerTapePath != "" {
		f, err := os.Open(readerTapePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening reader tape %s: %w", readerTapePath, err)
		}
		reader := device.NewPaperTapeReader(f, logger)
		devices = append(devices, reader)
		bootDevice = reader
	}

	if punchTapePath != "" {
		f, err := os.OpenFile(punchTapePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening punch tape %s: %w", punchTapePath, err)
		}
		devices = append(devices, device.NewPaperTapePunch(f))
	}

	if bootTapePath != "" {
		f, err := os.Open(bootTapePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening boot tape %s: %w", bootTapePath, err)
		}
		bootDevice = device.NewPaperTapeReader(f, logger)
	}

	return devices, bootDevice, nil
}

func applySwitchFlags(s *storage.Storage) {
	if v, err := parseOctalFlag(jumpSwitchesOct); err == nil {
		s.SetJumpSwitchMask(v)
	}
	if v, err := parseOctalFlag(stopSwitchesOct); err == nil {
		s.SetStopSwitchMask(v)
	}
}

func parseOctalFlag(s string) (uint8, error) {
	var v uint8
	_, err := fmt.Sscanf(s, "%o", &v)
	return v, err
}
