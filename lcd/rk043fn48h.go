package lcd

import (
	"iter"

	"disco/hal"
)

const (
	rk043fn48hWidth  = 480
	rk043fn48hHeight = 272

	rk043fn48hFBSize = rk043fn48hWidth * rk043fn48hHeight
)

// RK043FN48HClock is the HSE reference of the discovery board: a 25 MHz
// clock fed in bypass mode.
var RK043FN48HClock = hal.HSEClock{Hz: 25_000_000, Mode: hal.HSEBypass}

// RK043FN48HConfig returns the timing of the 4.3" RK043FN48H panel.
func RK043FN48HConfig() hal.DisplayConfig {
	return hal.DisplayConfig{
		ActiveWidth:  rk043fn48hWidth,
		ActiveHeight: rk043fn48hHeight,
		HBackPorch:   13,
		HFrontPorch:  30,
		HSync:        41,
		VBackPorch:   2,
		VFrontPorch:  2,
		VSync:        10,
		FrameRate:    60,

		HSyncPol:        false,
		VSyncPol:        false,
		NoDataEnablePol: false,
		PixelClockPol:   false,
	}
}

// RK043FN48H is the panel of the STM32F746G-DISCO drawn through LTDC layer 1
// in RGB565.
type RK043FN48H struct {
	config     hal.DisplayConfig
	controller Controller
}

var _ Lcd = (*RK043FN48H)(nil)

// NewRK043FN48H takes the LTDC and DMA2D engines, brings the display
// controller up and returns a panel ready to draw.
func NewRK043FN48H(ltdc hal.LTDC, dma2d hal.DMA2D) *RK043FN48H {
	config := RK043FN48HConfig()
	clock := RK043FN48HClock
	controller := hal.NewDisplayController(ltdc, dma2d, hal.PixelFormatRGB565, config, &clock)
	return newRK043FN48H(config, controller)
}

// newRK043FN48H binds a fresh framebuffer to layer 1, enables it and reloads.
// The buffer is handed over to the controller; the panel keeps no reference.
func newRK043FN48H(config hal.DisplayConfig, controller Controller) *RK043FN48H {
	fb := new([rk043fn48hFBSize]uint16)
	controller.ConfigLayer(hal.LayerL1, fb[:], hal.PixelFormatRGB565)
	controller.EnableLayer(hal.LayerL1)
	controller.Reload()
	return &RK043FN48H{config: config, controller: controller}
}

func (d *RK043FN48H) Config() hal.DisplayConfig { return d.config }

func (d *RK043FN48H) BoundingBox() Rectangle {
	return Rect(0, 0, int(d.config.ActiveWidth), int(d.config.ActiveHeight))
}

func (d *RK043FN48H) DrawPixels(pixels iter.Seq[Pixel]) {
	for p := range pixels {
		d.controller.DrawPixel(hal.LayerL1, p.Point.X, p.Point.Y, p.Color.Pack())
	}
}

func (d *RK043FN48H) FillArea(area Rectangle, colors ColorIter) {
	drawable := area.Intersection(d.BoundingBox())
	if drawable.Empty() {
		return
	}
	d.DrawPixels(func(yield func(Pixel) bool) {
		for p := range area.Points() {
			c, ok := colors()
			if !ok {
				return
			}
			if !drawable.Contains(p) {
				continue
			}
			if !yield(Pixel{Point: p, Color: c}) {
				return
			}
		}
	})
}

func (d *RK043FN48H) FillSolid(area Rectangle, c RGB565) {
	d.FillArea(area, Repeat(c))
}

func (d *RK043FN48H) Clear(c RGB565) {
	d.FillSolid(d.BoundingBox(), c)
}
