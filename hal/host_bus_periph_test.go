//go:build !tinygo

package hal

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/periph/conn/physic"
)

// fakeI2C answers only at addr.
type fakeI2C struct {
	addr   uint16
	value  byte
	closed bool
}

func (f *fakeI2C) String() string                  { return "fake" }
func (f *fakeI2C) SetSpeed(physic.Frequency) error { return nil }
func (f *fakeI2C) Close() error                    { f.closed = true; return nil }
func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if addr != f.addr {
		return errors.New("sysfs-i2c: remote I/O error")
	}
	for i := range r {
		r[i] = f.value
	}
	return nil
}

func TestPeriphControlBusNoAckIsNotFound(t *testing.T) {
	raw := &fakeI2C{addr: 0x1a, value: 0x89}
	bus := newPeriphControlBus(raw)

	var b [1]byte
	require.NoError(t, bus.Tx(0x1a, nil, b[:]))
	assert.Equal(t, byte(0x89), b[0])

	err := bus.Tx(0x1b, nil, b[:])
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "addr=0x1b")

	assert.Equal(t, []uint16{0x1a}, ScanControlBus(bus, ControlBusFirstAddr, ControlBusLastAddr))

	require.NoError(t, bus.Close())
	assert.True(t, raw.closed)
}
