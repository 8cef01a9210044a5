//go:build !tinygo

package hal

import "image"

// hostLTDC emulates the scan-out engine: layer registers are shadowed until
// Reload and the active layers are composed by scanout.
type hostLTDC struct {
	cfg     DisplayConfig
	timing  Timing
	clockHz uint32
	enabled bool

	shadow [layerCount]hostLayer
	active [layerCount]hostLayer
}

type hostLayer struct {
	buf     []uint16
	format  PixelFormat
	width   int
	height  int
	enabled bool
}

func newHostLTDC() *hostLTDC { return &hostLTDC{} }

func (l *hostLTDC) Init(cfg DisplayConfig, clock *HSEClock) {
	l.cfg = cfg
	l.timing = cfg.Timing()
	if clock != nil {
		l.clockHz = clock.Hz
	}
	l.enabled = true
}

func (l *hostLTDC) SetLayer(layer Layer, buf []uint16, format PixelFormat, width, height int) {
	s := &l.shadow[layer]
	s.buf = buf
	s.format = format
	s.width = width
	s.height = height
}

func (l *hostLTDC) EnableLayer(layer Layer) {
	l.shadow[layer].enabled = true
}

func (l *hostLTDC) Reload() {
	l.active = l.shadow
}

func (l *hostLTDC) width() int  { return int(l.cfg.ActiveWidth) }
func (l *hostLTDC) height() int { return int(l.cfg.ActiveHeight) }

// scanout composes the active layers into dst on a black background.
// Layers are opaque; L2 covers L1.
//
// The framebuffer is read without synchronization, exactly as the hardware
// does. Callers on the host run it between draw steps.
func (l *hostLTDC) scanout(dst *image.RGBA) {
	pix := dst.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 0xFF
	}
	if !l.enabled {
		return
	}

	b := dst.Bounds()
	for i := range l.active {
		layer := &l.active[i]
		if !layer.enabled || layer.buf == nil || layer.format != PixelFormatRGB565 {
			continue
		}
		w := minInt(layer.width, b.Dx())
		h := minInt(layer.height, b.Dy())
		for y := 0; y < h; y++ {
			src := layer.buf[y*layer.width : y*layer.width+w]
			row := pix[y*dst.Stride:]
			for x, p := range src {
				r, g, bb := rgb888From565(p)
				j := x * 4
				row[j+0] = r
				row[j+1] = g
				row[j+2] = bb
			}
		}
	}
}

// image returns a fresh RGBA copy of what the panel currently shows.
func (l *hostLTDC) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, l.width(), l.height()))
	l.scanout(img)
	return img
}

type hostDMA2D struct {
	enabled bool
}

func (d *hostDMA2D) Enable() { d.enabled = true }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
