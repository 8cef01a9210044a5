package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Pin is a minimal output pin abstraction.
type Pin interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// BytesPerPixel returns the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	default:
		return 0
	}
}

// Layer selects one of the LTDC compositing planes.
type Layer uint8

const (
	LayerL1 Layer = iota
	LayerL2

	layerCount = 2
)

func (l Layer) String() string {
	switch l {
	case LayerL1:
		return "L1"
	case LayerL2:
		return "L2"
	default:
		return "L?"
	}
}

// HSEClockMode selects how the external high-speed clock is fed.
type HSEClockMode uint8

const (
	// HSEBypass takes an external clock signal on OSC_IN.
	HSEBypass HSEClockMode = iota
	// HSEOscillator drives a crystal between OSC_IN and OSC_OUT.
	HSEOscillator
)

// HSEClock describes the external clock reference.
type HSEClock struct {
	Hz   uint32
	Mode HSEClockMode
}

// LTDC is the scan-out timing engine.
//
// Layer changes are written to shadow state and take effect on Reload.
type LTDC interface {
	// Init programs timing, polarities and background in one step and
	// enables scan-out.
	Init(cfg DisplayConfig, clock *HSEClock)
	SetLayer(layer Layer, buf []uint16, format PixelFormat, width, height int)
	EnableLayer(layer Layer)
	Reload()
}

// DMA2D is the pixel blit engine.
type DMA2D interface {
	Enable()
}

// ControlBus is a register-level control bus (I2C on the board).
//
// Tx writes w and then reads len(r) bytes from the device at addr.
type ControlBus interface {
	Tx(addr uint16, w, r []byte) error
}

// DMAStream is a memory-to-peripheral transfer that wraps around forever.
type DMAStream interface {
	// StartCircular transfers buf repeatedly. onHalf runs after the first
	// half of buf has been consumed, onFull after the second half.
	StartCircular(buf []int16, onHalf, onFull func()) error
	Stop() error
}

// AudioOut is the serial audio block feeding the codec.
type AudioOut interface {
	// Stream returns a circular DMA stream clocked at sampleRate stereo frames
	// per second. Samples are interleaved left/right.
	Stream(sampleRate uint32) (DMAStream, error)
}

// HAL provides the only contact point between the drivers and the board.
//
// LTDC and DMA2D hand out the engine resources; they are meant to be taken
// once and moved into a display controller.
type HAL interface {
	Logger() Logger
	LCDEnable() Pin
	Backlight() Pin
	LTDC() LTDC
	DMA2D() DMA2D
	ControlBus() ControlBus
	Audio() AudioOut
}
