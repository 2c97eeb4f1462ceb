package device

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// PaperTapeReaderFunctionCode and PaperTapePunchFunctionCode are the
// external function codes these devices respond to, per spec.md
// section 6 ("paper-tape reader select = 4102₈; paper-tape punch
// select = 4104₈").
const (
	PaperTapeReaderFunctionCode = 0o4102
	PaperTapePunchFunctionCode  = 0o4104
)

// paperTapeReadDelay is the CDC 350 reader's steady per-word cost:
// 350 characters/second works out to about 446 6.4-microsecond
// machine cycles, per PaperTapeReader.py's docstring and read_delay().
const paperTapeReadDelay = 446

// paperTapePunchWriteDelay is the punch's steady per-word cost; the
// source's docstring states 110 characters/second but (like
// a_times_10/a_times_100) never supplies the corresponding
// write_delay() body. 110 chars/sec against the same 6.4-microsecond
// cycle convention the reader uses works out to about 1420 cycles;
// this rewrite uses that derived value rather than leaving it
// unspecified.
const paperTapePunchWriteDelay = 1420

// PaperTapeReader emulates the CDC 350 paper tape reader: file-backed,
// normal-channel only, one octal integer per input line. Grounded on
// original_source/src/cdc160a/PaperTapeReader.py.
type PaperTapeReader struct {
	Base
	scanner *bufio.Scanner
	logger  *log.Logger
	atEOF   bool
}

// NewPaperTapeReader wraps r as the reader's backing tape image. r is
// an io.Reader rather than a path, the seam nesrom.New uses for ROM
// loading, so tests can pass a strings.Reader.
func NewPaperTapeReader(r io.Reader, logger *log.Logger) *PaperTapeReader {
	return &PaperTapeReader{
		Base:    NewBase("Paper Tape Reader", true, false, NormalOnly),
		scanner: bufio.NewScanner(r),
		logger:  logger,
	}
}

func (d *PaperTapeReader) Accepts(functionCode uint16) bool {
	return functionCode == PaperTapeReaderFunctionCode
}

func (d *PaperTapeReader) ExternalFunction(functionCode uint16) (bool, *uint16) {
	return functionCode == PaperTapeReaderFunctionCode, nil
}

// Read returns the next line's value, or (false, 0) at end of tape.
// Malformed lines (per spec.md section 6: not an unsigned octal
// integer in [0, 0o377]) are rejected with a logged warning and
// substituted 0, rather than PaperTapeReader.py's narrower
// "^[0-7]+$" check, which this rewrite generalizes per the value
// range spec.md documents for paper-tape data files.
func (d *PaperTapeReader) Read() (bool, uint16) {
	if d.atEOF || !d.scanner.Scan() {
		d.atEOF = true
		return false, 0
	}
	line := strings.TrimSpace(d.scanner.Text())
	value, err := strconv.ParseUint(line, 8, 16)
	if err != nil || value > 0o377 {
		if d.logger != nil {
			d.logger.Printf("paper tape reader: malformed line %q, using 0", line)
		}
		return true, 0
	}
	return true, uint16(value)
}

func (d *PaperTapeReader) ReadDelay() int        { return paperTapeReadDelay }
func (d *PaperTapeReader) InitialReadDelay() int { return paperTapeReadDelay }

// Write, WriteDelay, InitialWriteDelay are unsupported on a read-only
// device; Device.py's base class returns False / raises NotImplemented
// for the equivalent no-op defaults, which this rewrite expresses as
// simple zero-value returns rather than a panic, since CanWrite()
// already tells callers not to invoke them.
func (d *PaperTapeReader) Write(uint16) bool       { return false }
func (d *PaperTapeReader) WriteDelay() int         { return 0 }
func (d *PaperTapeReader) InitialWriteDelay() int  { return 0 }

// PaperTapePunch emulates a paper-tape punch: writes one 3-digit octal
// number per line to the backing writer. Grounded on
// original_source/src/cdc160a/PaperTapePunch.py.
type PaperTapePunch struct {
	Base
	w io.Writer
}

func NewPaperTapePunch(w io.Writer) *PaperTapePunch {
	return &PaperTapePunch{Base: NewBase("Paper Tape Punch", false, true, NormalOnly), w: w}
}

func (d *PaperTapePunch) Accepts(functionCode uint16) bool {
	return functionCode == PaperTapePunchFunctionCode
}

func (d *PaperTapePunch) ExternalFunction(functionCode uint16) (bool, *uint16) {
	return functionCode == PaperTapePunchFunctionCode, nil
}

func (d *PaperTapePunch) Write(value uint16) bool {
	_, err := fmt.Fprintf(d.w, "%03o\n", value&0o377)
	return err == nil
}

func (d *PaperTapePunch) WriteDelay() int        { return paperTapePunchWriteDelay }
func (d *PaperTapePunch) InitialWriteDelay() int { return paperTapePunchWriteDelay }

func (d *PaperTapePunch) Read() (bool, uint16) { return false, 0 }
func (d *PaperTapePunch) ReadDelay() int        { return 0 }
func (d *PaperTapePunch) InitialReadDelay() int { return 0 }
