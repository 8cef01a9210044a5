// Package wm8994 talks to the Wolfson WM8994 audio codec over its control
// bus. Registers are 16 bits wide with 16-bit big-endian addresses.
package wm8994

import (
	"encoding/binary"

	"disco/hal"

	"github.com/juju/errors"
)

// Address is the codec's control bus address with CS/ADDR tied low.
const Address = 0x1a

// FamilyID is the value of the reset/ID register for the WM8994 family.
const FamilyID = 0x8994

const (
	RegSoftwareReset uint16 = 0x0000
	RegPowerMgmt1    uint16 = 0x0001
	RegAIF1Rate      uint16 = 0x0210
)

type Config struct {
	Address uint16
}

type Device struct {
	bus  hal.ControlBus
	addr uint16
	buf  [4]byte
}

// New returns a codec handle. A zero Config uses Address.
func New(bus hal.ControlBus, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = Address
	}
	return &Device{bus: bus, addr: addr}
}

func (d *Device) ReadRegister(reg uint16) (uint16, error) {
	if d.bus == nil {
		return 0, errors.NotSupportedf("wm8994: control bus")
	}
	binary.BigEndian.PutUint16(d.buf[:2], reg)
	if err := d.bus.Tx(d.addr, d.buf[:2], d.buf[2:4]); err != nil {
		return 0, errors.Annotatef(err, "wm8994: read reg 0x%04x", reg)
	}
	return binary.BigEndian.Uint16(d.buf[2:4]), nil
}

func (d *Device) WriteRegister(reg, value uint16) error {
	if d.bus == nil {
		return errors.NotSupportedf("wm8994: control bus")
	}
	binary.BigEndian.PutUint16(d.buf[:2], reg)
	binary.BigEndian.PutUint16(d.buf[2:4], value)
	if err := d.bus.Tx(d.addr, d.buf[:4], nil); err != nil {
		return errors.Annotatef(err, "wm8994: write reg 0x%04x", reg)
	}
	return nil
}

// Reset restores every register to its power-on default.
func (d *Device) Reset() error {
	return d.WriteRegister(RegSoftwareReset, 0)
}

// Family reads the device ID from the reset register.
func (d *Device) Family() (uint16, error) {
	return d.ReadRegister(RegSoftwareReset)
}

// Probe reports whether a WM8994 family codec answers at the configured
// address.
func (d *Device) Probe() (bool, error) {
	id, err := d.Family()
	if errors.IsNotFound(errors.Cause(err)) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return id == FamilyID, nil
}
