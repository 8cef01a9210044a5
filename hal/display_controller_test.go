//go:build !tinygo

package hal

import (
	"image"
	"testing"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func newTestController() (*DisplayController, *hostLTDC, *hostDMA2D) {
	ltdc := newHostLTDC()
	dma2d := &hostDMA2D{}
	clock := HSEClock{Hz: 25_000_000, Mode: HSEBypass}
	c := NewDisplayController(ltdc, dma2d, PixelFormatRGB565, rk043fn48h(), &clock)
	return c, ltdc, dma2d
}

func TestNewDisplayControllerInitializesEngines(t *testing.T) {
	_, ltdc, dma2d := newTestController()
	if !dma2d.enabled {
		t.Fatal("DMA2D not enabled")
	}
	if !ltdc.enabled {
		t.Fatal("LTDC not enabled")
	}
	if ltdc.clockHz != 25_000_000 {
		t.Fatalf("clock = %d", ltdc.clockHz)
	}
	if ltdc.timing != rk043fn48h().Timing() {
		t.Fatalf("timing = %#08x", ltdc.timing)
	}
}

func TestDisplayControllerRejectsBadConfig(t *testing.T) {
	expectPanic(t, "invalid config", func() {
		NewDisplayController(newHostLTDC(), &hostDMA2D{}, PixelFormatRGB565, DisplayConfig{}, nil)
	})
	expectPanic(t, "nil engines", func() {
		NewDisplayController(nil, nil, PixelFormatRGB565, rk043fn48h(), nil)
	})
}

func TestDisplayControllerProtocol(t *testing.T) {
	c, _, _ := newTestController()
	expectPanic(t, "enable before config", func() { c.EnableLayer(LayerL1) })
	expectPanic(t, "short buffer", func() {
		c.ConfigLayer(LayerL1, make([]uint16, 10), PixelFormatRGB565)
	})

	c.ConfigLayer(LayerL1, make([]uint16, 480*272), PixelFormatRGB565)
	c.EnableLayer(LayerL1)
	expectPanic(t, "draw before reload", func() { c.DrawPixel(LayerL1, 0, 0, 0xFFFF) })

	c.Reload()
	c.DrawPixel(LayerL1, 0, 0, 0xFFFF)
	expectPanic(t, "draw past buffer", func() { c.DrawPixel(LayerL1, 0, 272, 0xFFFF) })
}

func TestScanoutShowsLayerAfterReload(t *testing.T) {
	c, ltdc, _ := newTestController()
	buf := make([]uint16, 480*272)
	c.ConfigLayer(LayerL1, buf, PixelFormatRGB565)
	c.EnableLayer(LayerL1)

	img := image.NewRGBA(image.Rect(0, 0, 480, 272))
	buf[0] = 0xF800
	ltdc.scanout(img)
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Fatal("layer visible before reload")
	}

	c.Reload()
	c.DrawPixel(LayerL1, 479, 271, 0x07E0)
	ltdc.scanout(img)

	if got := img.RGBAAt(0, 0); got.R != 0xFF || got.G != 0 || got.B != 0 || got.A != 0xFF {
		t.Fatalf("pixel (0,0) = %+v, want red", got)
	}
	if got := img.RGBAAt(479, 271); got.R != 0 || got.G != 0xFF || got.B != 0 {
		t.Fatalf("pixel (479,271) = %+v, want green", got)
	}
	if got := img.RGBAAt(1, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Fatalf("pixel (1,0) = %+v, want black", got)
	}
}

func TestScanoutUpperLayerCovers(t *testing.T) {
	c, ltdc, _ := newTestController()
	l1 := make([]uint16, 480*272)
	l2 := make([]uint16, 480*272)
	c.ConfigLayer(LayerL1, l1, PixelFormatRGB565)
	c.ConfigLayer(LayerL2, l2, PixelFormatRGB565)
	c.EnableLayer(LayerL1)
	c.EnableLayer(LayerL2)
	c.Reload()
	c.DrawPixel(LayerL1, 3, 3, 0xF800)
	c.DrawPixel(LayerL2, 3, 3, 0x001F)

	img := ltdc.image()
	if got := img.RGBAAt(3, 3); got.B != 0xFF || got.R != 0 {
		t.Fatalf("pixel = %+v, want L2 blue", got)
	}
}
