//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger    *hostLogger
	lcdEnable *hostPin
	backlight *hostPin
	ltdc      *hostLTDC
	dma2d     *hostDMA2D
	bus       ControlBus
	audio     AudioOut
}

// New returns a host HAL implementation without audio output.
func New() HAL {
	return newHostHAL(nil)
}

func newHostHAL(audio AudioOut) *hostHAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger:    logger,
		lcdEnable: &hostPin{name: "lcd_disp", logger: logger},
		backlight: &hostPin{name: "lcd_bl", logger: logger},
		ltdc:      newHostLTDC(),
		dma2d:     &hostDMA2D{},
		bus:       NewSimControlBus(),
		audio:     audio,
	}
}

func (h *hostHAL) Logger() Logger         { return h.logger }
func (h *hostHAL) LCDEnable() Pin         { return h.lcdEnable }
func (h *hostHAL) Backlight() Pin         { return h.backlight }
func (h *hostHAL) LTDC() LTDC             { return h.ltdc }
func (h *hostHAL) DMA2D() DMA2D           { return h.dma2d }
func (h *hostHAL) ControlBus() ControlBus { return h.bus }
func (h *hostHAL) Audio() AudioOut        { return h.audio }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostPin struct {
	mu     sync.Mutex
	name   string
	on     bool
	logger *hostLogger
}

func (p *hostPin) High() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.on = true
	p.logger.WriteLineString(p.name + ": HIGH")
}

func (p *hostPin) Low() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.on = false
	p.logger.WriteLineString(p.name + ": LOW")
}
