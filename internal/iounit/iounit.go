// Package iounit implements the buffered I/O subsystem: the two
// selected-device slots (normal, buffer channel) and external-function
// dispatch. Grounded on original_source/src/cdc160a/InputOutput.py
// and IOStatus.py. initiate_buffer_input/initiate_buffer_output and
// the buffer-channel slot itself are not present in InputOutput.py at
// all (Microinstructions.py calls them, but the source file never
// defines them) — these are supplied here per spec.md section 4.7's
// prose description, the gap SPEC_FULL.md section 12.2's sibling note
// on the interrupt arbiter also flags for RunLoop.py.
package iounit

import (
	"github.com/bdwalton/cdc160a/internal/bufferpump"
	"github.com/bdwalton/cdc160a/internal/device"
)

// BufferStorage is the subset of *storage.Storage InitiateBufferInput/
// Output need to decide which pump to build and to flip the
// buffering flag, kept as a small interface for the same
// import-cycle reason bufferpump.Storage is.
type BufferStorage interface {
	bufferpump.Storage
	SetBuffering(bool)
}

// InitiationStatus reports whether InitiateBufferInput/Output started
// a new pump or found one already running, per spec.md section 4.7.
type InitiationStatus int

const (
	Started InitiationStatus = iota
	AlreadyRunning
)

// IOUnit owns the device list and the two selected-device slots.
// Grounded on InputOutput.py's InputOutput class.
type IOUnit struct {
	devices []device.Device

	normalDevice device.Device
	bufferDevice device.Device
	bufferPump   bufferpump.Pump
}

func New(devices ...device.Device) *IOUnit {
	return &IOUnit{devices: devices}
}

// Attach adds a device to the scan list, e.g. for devices constructed
// after the I/O unit (tests building up a machine incrementally).
func (io *IOUnit) Attach(d device.Device) {
	io.devices = append(io.devices, d)
}

func (io *IOUnit) DeviceOnNormalChannel() device.Device { return io.normalDevice }
func (io *IOUnit) DeviceOnBufferChannel() device.Device { return io.bufferDevice }

// Clear deselects both channels and drops any active pump, per
// InputOutput.py's clear().
func (io *IOUnit) Clear() {
	io.normalDevice = nil
	io.bufferDevice = nil
	io.bufferPump = nil
}

// ClearBufferControls drops only the buffer-channel slot, per CBC's
// narrower scope in spec.md section 4.4/5 ("buffering is cancelled by
// the clear buffer controls micro-op"); MasterClear (the storage-level
// operation, invoked together with IOUnit.Clear by the console) drops
// both.
func (io *IOUnit) ClearBufferControls(storage BufferStorage) {
	io.bufferDevice = nil
	io.bufferPump = nil
	storage.SetBuffering(false)
}

// ExternalFunction deselects the current normal device, scans for one
// that accepts the code, and selects it on success. Grounded on
// InputOutput.py's external_function.
func (io *IOUnit) ExternalFunction(functionCode uint16) (status *uint16, ok bool) {
	io.normalDevice = nil
	for _, d := range io.devices {
		if d.Accepts(functionCode) {
			accepted, resp := d.ExternalFunction(functionCode)
			if accepted {
				io.normalDevice = d
			}
			return resp, accepted
		}
	}
	return nil, false
}

func (io *IOUnit) ReadDelay() int {
	if io.normalDevice == nil {
		return 0
	}
	return io.normalDevice.ReadDelay()
}

func (io *IOUnit) WriteDelay() int {
	if io.normalDevice == nil {
		return 0
	}
	return io.normalDevice.WriteDelay()
}

func (io *IOUnit) ReadNormal() (bool, uint16) {
	if io.normalDevice == nil {
		return false, 0
	}
	return io.normalDevice.Read()
}

func (io *IOUnit) WriteNormal(value uint16) bool {
	if io.normalDevice == nil {
		return false
	}
	return io.normalDevice.Write(value)
}

// InitiateBufferInput starts a buffered-input pump bound to the
// currently selected normal-channel device, unless one is already
// running.
func (io *IOUnit) InitiateBufferInput(storage BufferStorage) InitiationStatus {
	if io.bufferPump != nil {
		return AlreadyRunning
	}
	io.bufferDevice = io.normalDevice
	io.bufferPump = bufferpump.NewInputPump(io.bufferDevice)
	storage.SetBuffering(true)
	return Started
}

// InitiateBufferOutput is InitiateBufferInput's output counterpart.
func (io *IOUnit) InitiateBufferOutput(storage BufferStorage) InitiationStatus {
	if io.bufferPump != nil {
		return AlreadyRunning
	}
	io.bufferDevice = io.normalDevice
	io.bufferPump = bufferpump.NewOutputPump(io.bufferDevice)
	storage.SetBuffering(true)
	return Started
}

// PumpBufferChannel advances the active buffer pump by elapsedCycles,
// deselecting it and clearing buffering on completion or failure, per
// spec.md section 4.6 step 7.
func (io *IOUnit) PumpBufferChannel(elapsedCycles int, storage BufferStorage) bufferpump.Status {
	if io.bufferPump == nil {
		return bufferpump.NoDataMoved
	}
	status := io.bufferPump.Pump(elapsedCycles, storage)
	switch status {
	case bufferpump.Completed, bufferpump.Failure:
		io.bufferDevice = nil
		io.bufferPump = nil
		storage.SetBuffering(false)
	}
	return status
}
