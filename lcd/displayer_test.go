package lcd

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

func TestDisplayerSetPixelClips(t *testing.T) {
	d, ctrl := newTestPanel()
	disp := NewDisplayer(d)

	if w, h := disp.Size(); w != 480 || h != 272 {
		t.Fatalf("Size() = %d,%d, want 480,272", w, h)
	}

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	disp.SetPixel(-1, 0, white)
	disp.SetPixel(480, 0, white)
	disp.SetPixel(0, 272, white)
	disp.SetPixel(479, 271, white)

	if len(ctrl.writes) != 1 {
		t.Fatalf("wrote %d pixels, want 1", len(ctrl.writes))
	}
	if got := ctrl.writes[0]; got != (write{x: 479, y: 271, value: 0xFFFF}) {
		t.Fatalf("write = %+v", got)
	}
}

func TestDisplayerText(t *testing.T) {
	d, ctrl := newTestPanel()
	disp := NewDisplayer(d)

	tinyfont.WriteLine(disp, &proggy.TinySZ8pt7b, 2, 10, "disco", color.RGBA{R: 0xFF, A: 0xFF})
	if len(ctrl.writes) == 0 {
		t.Fatal("text drew no pixels")
	}
	for _, w := range ctrl.writes {
		if w.value != Red.Pack() {
			t.Fatalf("text pixel = %#04x, want red", w.value)
		}
	}
}

func TestDisplayerFillRectangle(t *testing.T) {
	d, ctrl := newTestPanel()
	disp := NewDisplayer(d)
	if err := disp.FillRectangle(476, 0, 8, 2, color.RGBA{B: 0xFF, A: 0xFF}); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	if len(ctrl.writes) != 8 {
		t.Fatalf("wrote %d pixels, want 8", len(ctrl.writes))
	}
}
