package device

// TestTape is the "hypothetical bidirectional test tape" spec.md
// section 4.8 names. It is not present in original_source/; it is
// built here (per SPEC_FULL.md section 12.3) as a genuine
// NormalAndBuffered device backed by two in-memory queues, primarily
// to exercise the buffer-pump and synchronous-I/O code paths in tests
// without a real file-backed image. Function codes per spec.md
// section 6: select-for-read = 3700₈, select-for-write = 3701₈,
// status-check = 3702₈.
type TestTape struct {
	Base
	in       []uint16
	out      []uint16
	selected uint16 // 0 = none, else the last accepted function code
}

const (
	TestTapeSelectReadCode   = 0o3700
	TestTapeSelectWriteCode  = 0o3701
	TestTapeStatusCheckCode  = 0o3702

	TestTapeStatusOKNoInput    = 0o0000
	TestTapeStatusOKHasInput   = 0o0001
	TestTapeStatusOffline      = 0o4000
	TestTapeStatusIllegal      = 0o7777
)

func NewTestTape(input []uint16) *TestTape {
	return &TestTape{
		Base: NewBase("Test Tape", true, true, NormalAndBuffered),
		in:   append([]uint16(nil), input...),
	}
}

// Written returns the words written to the tape so far, for tests to
// inspect.
func (d *TestTape) Written() []uint16 { return append([]uint16(nil), d.out...) }

func (d *TestTape) Accepts(functionCode uint16) bool {
	switch functionCode {
	case TestTapeSelectReadCode, TestTapeSelectWriteCode, TestTapeStatusCheckCode:
		return true
	default:
		return false
	}
}

func (d *TestTape) ExternalFunction(functionCode uint16) (bool, *uint16) {
	switch functionCode {
	case TestTapeSelectReadCode, TestTapeSelectWriteCode:
		d.selected = functionCode
		return true, nil
	case TestTapeStatusCheckCode:
		status := uint16(TestTapeStatusOKNoInput)
		if len(d.in) > 0 {
			status = TestTapeStatusOKHasInput
		}
		return true, &status
	default:
		return false, nil
	}
}

func (d *TestTape) Read() (bool, uint16) {
	if d.selected != TestTapeSelectReadCode || len(d.in) == 0 {
		return false, 0
	}
	v := d.in[0]
	d.in = d.in[1:]
	return true, v
}

func (d *TestTape) Write(value uint16) bool {
	if d.selected != TestTapeSelectWriteCode {
		return false
	}
	d.out = append(d.out, value&0o7777)
	return true
}

func (d *TestTape) ReadDelay() int         { return 4 }
func (d *TestTape) InitialReadDelay() int  { return 4 }
func (d *TestTape) WriteDelay() int        { return 4 }
func (d *TestTape) InitialWriteDelay() int { return 4 }
