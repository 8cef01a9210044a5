//go:build tinygo && baremetal && stm32f746disco

package hal

import (
	"machine"
	"runtime/volatile"
	"unsafe"
)

type discoHAL struct {
	logger    *serialLogger
	lcdEnable *gpioPin
	backlight *gpioPin
	ltdc      *ltdcEngine
	dma2d     *dma2dEngine
}

// New returns the STM32F746G-DISCO HAL.
//
// Clocks (216 MHz SYSCLK from the 25 MHz HSE bypass, PLLSAI for the pixel
// clock) and the LTDC pin multiplexing are set up by the board bring-up
// before New runs.
//
// LCD_DISP is PI12, the backlight enable is PK3.
func New() HAL {
	rccAHB1ENR.SetBits(rccAHB1ENRGPIOIEN | rccAHB1ENRGPIOKEN)
	return &discoHAL{
		logger:    &serialLogger{},
		lcdEnable: newGPIOPin(gpioI, 12),
		backlight: newGPIOPin(gpioK, 3),
		ltdc:      &ltdcEngine{regs: ltdcRegisters},
		dma2d:     &dma2dEngine{},
	}
}

func (h *discoHAL) Logger() Logger         { return h.logger }
func (h *discoHAL) LCDEnable() Pin         { return h.lcdEnable }
func (h *discoHAL) Backlight() Pin         { return h.backlight }
func (h *discoHAL) LTDC() LTDC             { return h.ltdc }
func (h *discoHAL) DMA2D() DMA2D           { return h.dma2d }
func (h *discoHAL) ControlBus() ControlBus { return nil }
func (h *discoHAL) Audio() AudioOut        { return nil }

type serialLogger struct{}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	machine.Serial.Write(b)
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

const (
	rccBase   = 0x40023800
	gpioIBase = 0x40022000
	gpioKBase = 0x40022800

	rccAHB1ENRGPIOIEN = 1 << 8
	rccAHB1ENRGPIOKEN = 1 << 10
	rccAHB1ENRDMA2DEN = 1 << 23
	rccAPB2ENRLTDCEN  = 1 << 26
)

var (
	rccAHB1ENR = (*volatile.Register32)(unsafe.Pointer(uintptr(rccBase + 0x30)))
	rccAPB2ENR = (*volatile.Register32)(unsafe.Pointer(uintptr(rccBase + 0x44)))

	gpioI = (*gpioRegs)(unsafe.Pointer(uintptr(gpioIBase)))
	gpioK = (*gpioRegs)(unsafe.Pointer(uintptr(gpioKBase)))
)

type gpioRegs struct {
	MODER   volatile.Register32
	OTYPER  volatile.Register32
	OSPEEDR volatile.Register32
	PUPDR   volatile.Register32
	IDR     volatile.Register32
	ODR     volatile.Register32
	BSRR    volatile.Register32
}

type gpioPin struct {
	port *gpioRegs
	n    uint8
}

// newGPIOPin configures n as a push-pull output, driven low.
func newGPIOPin(port *gpioRegs, n uint8) *gpioPin {
	p := &gpioPin{port: port, n: n}
	p.Low()
	shift := uint32(n) * 2
	port.MODER.ReplaceBits(0b01, 0b11, uint8(shift))
	port.OTYPER.ClearBits(1 << n)
	return p
}

func (p *gpioPin) High() { p.port.BSRR.Set(1 << p.n) }
func (p *gpioPin) Low()  { p.port.BSRR.Set(1 << (p.n + 16)) }

type dma2dEngine struct{}

func (d *dma2dEngine) Enable() {
	rccAHB1ENR.SetBits(rccAHB1ENRDMA2DEN)
}
