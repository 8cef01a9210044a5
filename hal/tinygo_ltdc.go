//go:build tinygo && baremetal && stm32f746disco

package hal

import (
	"runtime/volatile"
	"unsafe"
)

const ltdcBase = 0x40016800

var ltdcRegisters = (*ltdcRegs)(unsafe.Pointer(uintptr(ltdcBase)))

type ltdcRegs struct {
	_      [2]uint32
	SSCR   volatile.Register32
	BPCR   volatile.Register32
	AWCR   volatile.Register32
	TWCR   volatile.Register32
	GCR    volatile.Register32
	_      [2]uint32
	SRCR   volatile.Register32
	_      uint32
	BCCR   volatile.Register32
	_      uint32
	IER    volatile.Register32
	ISR    volatile.Register32
	ICR    volatile.Register32
	LIPCR  volatile.Register32
	CPSR   volatile.Register32
	CDSR   volatile.Register32
	_      [14]uint32
	Layers [layerCount]ltdcLayerRegs
}

type ltdcLayerRegs struct {
	CR     volatile.Register32
	WHPCR  volatile.Register32
	WVPCR  volatile.Register32
	CKCR   volatile.Register32
	PFCR   volatile.Register32
	CACR   volatile.Register32
	DCCR   volatile.Register32
	BFCR   volatile.Register32
	_      [2]uint32
	CFBAR  volatile.Register32
	CFBLR  volatile.Register32
	CFBLNR volatile.Register32
	_      [3]uint32
	CLUTWR volatile.Register32
	_      [15]uint32
}

const (
	ltdcGCRLTDCEN = 1 << 0
	ltdcGCRPCPOL  = 1 << 28
	ltdcGCRDEPOL  = 1 << 29
	ltdcGCRVSPOL  = 1 << 30
	ltdcGCRHSPOL  = 1 << 31

	ltdcSRCRIMR = 1 << 0

	ltdcLxCRLEN = 1 << 0

	ltdcPFRGB565 = 0b010

	// Constant alpha * pixel alpha blending factors.
	ltdcBFCRPAxCA = 0b110<<8 | 0b111
)

// ltdcEngine programs the LTDC registers. Layer writes land in the shadow
// registers; Reload requests an immediate shadow reload.
type ltdcEngine struct {
	regs   *ltdcRegs
	timing Timing
}

func (l *ltdcEngine) Init(cfg DisplayConfig, clock *HSEClock) {
	rccAPB2ENR.SetBits(rccAPB2ENRLTDCEN)

	l.timing = cfg.Timing()
	r := l.regs
	r.GCR.ClearBits(ltdcGCRLTDCEN)
	r.SSCR.Set(l.timing.SSCR)
	r.BPCR.Set(l.timing.BPCR)
	r.AWCR.Set(l.timing.AWCR)
	r.TWCR.Set(l.timing.TWCR)

	var gcr uint32
	if cfg.HSyncPol {
		gcr |= ltdcGCRHSPOL
	}
	if cfg.VSyncPol {
		gcr |= ltdcGCRVSPOL
	}
	if cfg.NoDataEnablePol {
		gcr |= ltdcGCRDEPOL
	}
	if cfg.PixelClockPol {
		gcr |= ltdcGCRPCPOL
	}
	r.BCCR.Set(0)
	r.GCR.Set(gcr | ltdcGCRLTDCEN)
}

func (l *ltdcEngine) SetLayer(layer Layer, buf []uint16, format PixelFormat, width, height int) {
	lr := &l.regs.Layers[layer]
	hs := l.timing.HorizontalStart()
	vs := l.timing.VerticalStart()
	lr.WHPCR.Set((hs+uint32(width)-1)<<16 | hs)
	lr.WVPCR.Set((vs+uint32(height)-1)<<16 | vs)
	lr.PFCR.Set(ltdcPFRGB565)
	lr.CACR.Set(0xFF)
	lr.DCCR.Set(0)
	lr.BFCR.Set(ltdcBFCRPAxCA)

	pitch := uint32(width * format.BytesPerPixel())
	lr.CFBAR.Set(uint32(uintptr(unsafe.Pointer(&buf[0]))))
	lr.CFBLR.Set(pitch<<16 | (pitch + 3))
	lr.CFBLNR.Set(uint32(height))
}

func (l *ltdcEngine) EnableLayer(layer Layer) {
	l.regs.Layers[layer].CR.SetBits(ltdcLxCRLEN)
}

func (l *ltdcEngine) Reload() {
	l.regs.SRCR.Set(ltdcSRCRIMR)
}
