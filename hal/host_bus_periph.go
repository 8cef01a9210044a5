//go:build !tinygo

package hal

import (
	"fmt"
	"io"

	"github.com/juju/errors"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/host"
)

// ControlBusCloser is a control bus backed by an operating system device.
type ControlBusCloser interface {
	ControlBus
	io.Closer
}

// OpenControlBus opens an I2C bus of the host through periph. An empty name
// picks the first bus found. speedHz of zero keeps the bus default.
func OpenControlBus(name string, speedHz uint32) (ControlBusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Annotate(err, "periph/init")
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, errors.Annotatef(err, "i2c open name=%q", name)
	}
	if speedHz > 0 {
		if err := bus.SetSpeed(physic.Frequency(speedHz) * physic.Hertz); err != nil {
			bus.Close()
			return nil, errors.Annotatef(err, "i2c %s speed=%dHz", bus, speedHz)
		}
	}
	return newPeriphControlBus(bus), nil
}

// periphControlBus reports a failed transfer as NotFound. The Linux i2c-dev
// driver folds a missing acknowledge into the errno of the whole transfer,
// so no finer distinction survives periph.
type periphControlBus struct {
	bus i2c.BusCloser
}

func newPeriphControlBus(bus i2c.BusCloser) *periphControlBus {
	return &periphControlBus{bus: bus}
}

func (b *periphControlBus) Tx(addr uint16, w, r []byte) error {
	if err := b.bus.Tx(addr, w, r); err != nil {
		return errors.NewNotFound(err, fmt.Sprintf("i2c %s: no ack from addr=0x%02x", b.bus, addr))
	}
	return nil
}

func (b *periphControlBus) Close() error {
	return errors.Annotatef(b.bus.Close(), "i2c %s close", b.bus)
}
