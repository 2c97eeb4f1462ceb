package device

// NullDevice is the vacuous device: writes to the bit bucket, returns
// zero on read. Grounded on original_source/src/cdc160a/NullDevice.py.
type NullDevice struct {
	Base
}

// NullFunctionCode is the function code the null device accepts,
// matching NullDevice.py's accepts() (0o7777).
const NullFunctionCode = 0o7777

func NewNullDevice() *NullDevice {
	return &NullDevice{Base: NewBase("Null Device", true, true, NormalAndBuffered)}
}

func (d *NullDevice) Accepts(functionCode uint16) bool { return functionCode == NullFunctionCode }

func (d *NullDevice) ExternalFunction(functionCode uint16) (bool, *uint16) {
	return functionCode == NullFunctionCode, nil
}

func (d *NullDevice) Read() (bool, uint16)    { return true, 0 }
func (d *NullDevice) Write(uint16) bool       { return true }
func (d *NullDevice) InitialReadDelay() int   { return d.ReadDelay() }
func (d *NullDevice) InitialWriteDelay() int  { return d.WriteDelay() }
func (d *NullDevice) ReadDelay() int          { return 1 }
func (d *NullDevice) WriteDelay() int         { return 1 }
