// Package bufferpump implements the asynchronous buffer-channel pumps
// that move one word at a time between a device and the buffer bank.
// Grounded on original_source/src/cdc160a/BufferPump.py,
// BufferedInputPump.py, BufferedOutputPump.py, NullBufferPump.py.
//
// spec.md section 9 calls out a Storage<->BufferPump cyclic-reference
// avoidance that the Python source's docstring states but its actual
// subclasses do not honor (BufferedInputPump/BufferedOutputPump both
// bind a Storage reference in __init__). This rewrite follows the
// stated intent, not the source's contradicting implementation: pumps
// hold only a Device reference and receive *storage.Storage as a
// parameter to Pump on every call.
package bufferpump

import "github.com/bdwalton/cdc160a/internal/device"

// Status is the result of one Pump call.
type Status int

const (
	NoDataMoved Status = iota
	OneWordMoved
	Completed
	Failure
)

func (s Status) String() string {
	switch s {
	case NoDataMoved:
		return "no_data_moved"
	case OneWordMoved:
		return "one_word_moved"
	case Completed:
		return "completed"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Storage is the subset of *storage.Storage a pump needs. Declared
// here (rather than importing internal/storage directly) so this
// package has no import-cycle risk with storage, matching the
// source's own stated reason for keeping BufferPump decoupled.
type Storage interface {
	BufferDataRegister() uint16
	SetBufferDataRegister(uint16)
	// BufferDataToMemory writes BDR to [BER] and advances BER,
	// reporting whether more words remain before BER reaches BXR.
	BufferDataToMemory() bool
	// MemoryToBufferData reads [BER] into BDR and advances BER,
	// reporting whether more words remain before BER reaches BXR.
	MemoryToBufferData() bool
}

// Pump is a single-use object created at the start of a buffered
// input or output operation and discarded when it completes.
type Pump interface {
	Device() device.Device
	Pump(elapsedCycles int, storage Storage) Status
}

// InputPump pumps words from its device into the buffer bank.
type InputPump struct {
	dev             device.Device
	cyclesRemaining int
}

func NewInputPump(dev device.Device) *InputPump {
	return &InputPump{dev: dev, cyclesRemaining: dev.InitialReadDelay()}
}

func (p *InputPump) Device() device.Device { return p.dev }
func (p *InputPump) CyclesRemaining() int  { return p.cyclesRemaining }

func (p *InputPump) Pump(elapsedCycles int, storage Storage) Status {
	p.cyclesRemaining -= elapsedCycles
	if p.cyclesRemaining > 0 {
		return NoDataMoved
	}
	p.cyclesRemaining = p.dev.ReadDelay()
	ok, datum := p.dev.Read()
	if !ok {
		return Failure
	}
	storage.SetBufferDataRegister(datum)
	if storage.BufferDataToMemory() {
		return OneWordMoved
	}
	return Completed
}

// OutputPump pumps words from the buffer bank to its device.
type OutputPump struct {
	dev             device.Device
	cyclesRemaining int
}

func NewOutputPump(dev device.Device) *OutputPump {
	return &OutputPump{dev: dev, cyclesRemaining: dev.InitialWriteDelay()}
}

func (p *OutputPump) Device() device.Device { return p.dev }
func (p *OutputPump) CyclesRemaining() int  { return p.cyclesRemaining }

func (p *OutputPump) Pump(elapsedCycles int, storage Storage) Status {
	p.cyclesRemaining -= elapsedCycles
	if p.cyclesRemaining > 0 {
		return NoDataMoved
	}
	p.cyclesRemaining = p.dev.WriteDelay()
	dataRemains := storage.MemoryToBufferData()
	if !p.dev.Write(storage.BufferDataRegister()) {
		return Failure
	}
	if dataRemains {
		return OneWordMoved
	}
	return Completed
}

// NullPump does nothing and never finishes, per NullBufferPump.py.
type NullPump struct {
	dev device.Device
}

func NewNullPump() *NullPump {
	return &NullPump{dev: device.NewNullDevice()}
}

func (p *NullPump) Device() device.Device                            { return p.dev }
func (p *NullPump) Pump(elapsedCycles int, storage Storage) Status { return NoDataMoved }
