//go:build !tinygo

package main

import (
	"bytes"
	"testing"

	"disco/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeSim(t *testing.T) {
	var out bytes.Buffer
	bus := hal.NewSimControlBus()
	require.NoError(t, probe(&out, bus, 0x1a, true, false))
	assert.Equal(t, "i2c: device at 0x1a\ncodec: detected DAC with id 0x8994\n", out.String())
}

func TestProbeMissingCodec(t *testing.T) {
	var out bytes.Buffer
	bus := hal.NewSimControlBus()
	bus.Detach(0x1a)
	err := probe(&out, bus, 0x1a, true, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codec addr=0x1a")
	assert.Equal(t, "i2c: no devices\n", out.String())
}

func TestResetAfterDetect(t *testing.T) {
	var out bytes.Buffer
	bus := hal.NewSimControlBus()
	codec := hal.NewSimWM8994()
	bus.Attach(0x1a, codec)
	require.NoError(t, bus.Tx(0x1a, []byte{0x02, 0x10, 0x00, 0x73}, nil))
	require.Equal(t, uint16(0x0073), codec.Register(0x0210))

	require.NoError(t, probe(&out, bus, 0x1a, false, true))
	assert.Equal(t, "codec: detected DAC with id 0x8994\ncodec: reset\n", out.String())
	assert.Equal(t, uint16(0), codec.Register(0x0210))
}

func TestOpenBusSim(t *testing.T) {
	bus, closer, err := openBus(true, "", 0)
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.NotNil(t, bus)
}
