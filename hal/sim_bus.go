//go:build !tinygo

package hal

import (
	"sync"

	"github.com/juju/errors"
)

// SimDevice is a register-addressed device on a simulated control bus.
type SimDevice interface {
	// Transfer handles one write-then-read transaction.
	Transfer(w, r []byte) error
}

// SimControlBus is an in-memory control bus. By default it carries a WM8994
// codec model at 0x1a, like the discovery board.
type SimControlBus struct {
	mu      sync.Mutex
	devices map[uint16]SimDevice
}

// NewSimControlBus returns a bus with the on-board codec attached.
func NewSimControlBus() *SimControlBus {
	b := &SimControlBus{devices: make(map[uint16]SimDevice)}
	b.Attach(0x1a, NewSimWM8994())
	return b
}

// Attach places dev at addr, replacing any previous device.
func (b *SimControlBus) Attach(addr uint16, dev SimDevice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.devices[addr] = dev
}

// Detach removes the device at addr.
func (b *SimControlBus) Detach(addr uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.devices, addr)
}

func (b *SimControlBus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	dev, ok := b.devices[addr]
	b.mu.Unlock()
	if !ok {
		return errors.NotFoundf("i2c: no ack from addr=0x%02x", addr)
	}
	return errors.Annotatef(dev.Transfer(w, r), "i2c: addr=0x%02x", addr)
}

// SimWM8994 models the register file of a WM8994 codec: 16-bit register
// addresses and 16-bit values, both big-endian on the wire.
type SimWM8994 struct {
	mu   sync.Mutex
	regs map[uint16]uint16
	ptr  uint16
}

const simWM8994FamilyID = 0x8994

func NewSimWM8994() *SimWM8994 {
	d := &SimWM8994{}
	d.reset()
	return d
}

func (d *SimWM8994) reset() {
	d.regs = map[uint16]uint16{0x0000: simWM8994FamilyID}
	d.ptr = 0
}

// Register returns the current value of reg.
func (d *SimWM8994) Register(reg uint16) uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.regs[reg]
}

func (d *SimWM8994) Transfer(w, r []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch len(w) {
	case 0:
	case 2:
		d.ptr = uint16(w[0])<<8 | uint16(w[1])
	case 4:
		reg := uint16(w[0])<<8 | uint16(w[1])
		val := uint16(w[2])<<8 | uint16(w[3])
		if reg == 0x0000 {
			// Any write to the ID register is a software reset.
			d.reset()
		} else {
			d.regs[reg] = val
		}
		d.ptr = reg
	default:
		return errors.Errorf("wm8994: unexpected write of %d bytes", len(w))
	}

	for i := 0; i < len(r); i += 2 {
		v := d.regs[d.ptr]
		r[i] = byte(v >> 8)
		if i+1 < len(r) {
			r[i+1] = byte(v)
		}
		d.ptr++
	}
	return nil
}
