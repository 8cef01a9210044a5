package hal

import "fmt"

// DisplayController drives the LTDC layers of one panel.
//
// It owns the layer framebuffers for the lifetime of the session. The only
// way to change pixels is DrawPixel; no accessor hands the memory back out.
type DisplayController struct {
	ltdc   LTDC
	dma2d  DMA2D
	config DisplayConfig
	format PixelFormat

	width  int
	height int

	layers   [layerCount]controllerLayer
	reloaded bool
}

type controllerLayer struct {
	buf     []uint16
	format  PixelFormat
	enabled bool
}

// NewDisplayController takes ownership of the scan-out and blit engines and
// applies the whole timing configuration before returning.
//
// Hardware presence is assumed; there is nothing to probe on this board.
func NewDisplayController(ltdc LTDC, dma2d DMA2D, format PixelFormat, cfg DisplayConfig, clock *HSEClock) *DisplayController {
	if ltdc == nil || dma2d == nil {
		panic("hal: display controller needs LTDC and DMA2D")
	}
	if !cfg.Valid() {
		panic(fmt.Sprintf("hal: invalid display config %+v", cfg))
	}
	dma2d.Enable()
	ltdc.Init(cfg, clock)
	return &DisplayController{
		ltdc:   ltdc,
		dma2d:  dma2d,
		config: cfg,
		format: format,
		width:  int(cfg.ActiveWidth),
		height: int(cfg.ActiveHeight),
	}
}

// Config returns the timing the controller was built with.
func (c *DisplayController) Config() DisplayConfig { return c.config }

// ConfigLayer binds buf to layer. The buffer must hold a full frame and is
// owned by the controller from now on.
func (c *DisplayController) ConfigLayer(layer Layer, buf []uint16, format PixelFormat) {
	if int(layer) >= layerCount {
		panic(fmt.Sprintf("hal: unknown layer %d", layer))
	}
	if format != PixelFormatRGB565 {
		panic(fmt.Sprintf("hal: layer %v: unsupported pixel format %d", layer, format))
	}
	if len(buf) < c.width*c.height {
		panic(fmt.Sprintf("hal: layer %v: framebuffer holds %d pixels, need %d", layer, len(buf), c.width*c.height))
	}
	l := &c.layers[layer]
	l.buf = buf
	l.format = format
	c.ltdc.SetLayer(layer, buf, format, c.width, c.height)
}

// EnableLayer turns on a configured layer; visible after Reload.
func (c *DisplayController) EnableLayer(layer Layer) {
	if int(layer) >= layerCount || c.layers[layer].buf == nil {
		panic(fmt.Sprintf("hal: enable of unconfigured layer %v", layer))
	}
	c.layers[layer].enabled = true
	c.ltdc.EnableLayer(layer)
}

// Reload makes the shadow layer configuration active.
func (c *DisplayController) Reload() {
	c.ltdc.Reload()
	c.reloaded = true
}

// DrawPixel stores value at (x, y) of layer.
//
// Coordinates are not checked against the panel; callers clip. A write
// outside the buffer panics, one outside the row wraps into the next row.
func (c *DisplayController) DrawPixel(layer Layer, x, y int, value uint16) {
	if !c.reloaded {
		panic("hal: draw before reload")
	}
	c.layers[layer].buf[y*c.width+x] = value
}
