//go:build !tinygo

// disco-probe scans a control bus and reads the audio codec family.
//
//	disco-probe -bus /dev/i2c-1 -speed 100000
//	disco-probe -sim
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"disco/audio/wm8994"
	"disco/hal"

	"github.com/juju/errors"
)

func main() {
	var (
		busName = flag.String("bus", "", "I2C bus name or number (empty = first available).")
		speed   = flag.Uint("speed", 100_000, "Bus clock in Hz (0 = keep the bus default).")
		addr    = flag.Uint("addr", wm8994.Address, "Codec address.")
		sim     = flag.Bool("sim", false, "Probe the simulated board bus instead of hardware.")
		scan    = flag.Bool("scan", true, "List every address that answers.")
		reset   = flag.Bool("reset", false, "Software-reset the codec after detecting it.")
	)
	flag.Parse()

	bus, closer, err := openBus(*sim, *busName, uint32(*speed))
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.ErrorStack(err))
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := probe(os.Stdout, bus, uint16(*addr), *scan, *reset); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openBus(sim bool, name string, speedHz uint32) (hal.ControlBus, io.Closer, error) {
	if sim {
		return hal.NewSimControlBus(), nil, nil
	}
	bus, err := hal.OpenControlBus(name, speedHz)
	if err != nil {
		return nil, nil, err
	}
	return bus, bus, nil
}

func probe(w io.Writer, bus hal.ControlBus, addr uint16, scan, reset bool) error {
	if scan {
		found := hal.ScanControlBus(bus, hal.ControlBusFirstAddr, hal.ControlBusLastAddr)
		for _, a := range found {
			fmt.Fprintf(w, "i2c: device at 0x%02x\n", a)
		}
		if len(found) == 0 {
			fmt.Fprintln(w, "i2c: no devices")
		}
	}

	codec := wm8994.New(bus, wm8994.Config{Address: addr})
	id, err := codec.Family()
	if err != nil {
		return errors.Annotatef(err, "codec addr=0x%02x", addr)
	}
	if id != wm8994.FamilyID {
		return errors.Errorf("codec addr=0x%02x: unknown id 0x%04x", addr, id)
	}
	fmt.Fprintf(w, "codec: detected DAC with id 0x%04x\n", id)

	if reset {
		if err := codec.Reset(); err != nil {
			return errors.Annotatef(err, "codec addr=0x%02x", addr)
		}
		fmt.Fprintln(w, "codec: reset")
	}
	return nil
}
