package lcd

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer exposes a DrawTarget as a drivers.Displayer so tinyfont and the
// other TinyGo drawing packages can render onto it. SetPixel clips to the
// panel.
type Displayer struct {
	target DrawTarget
	bounds Rectangle
}

var _ drivers.Displayer = (*Displayer)(nil)

func NewDisplayer(target DrawTarget) *Displayer {
	return &Displayer{target: target, bounds: target.BoundingBox()}
}

func (d *Displayer) Size() (x, y int16) {
	return int16(d.bounds.Size.Width), int16(d.bounds.Size.Height)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	p := Point{X: int(x), Y: int(y)}
	if !d.bounds.Contains(p) {
		return
	}
	px := Pixel{Point: p, Color: RGB565FromRGBA(c)}
	d.target.DrawPixels(func(yield func(Pixel) bool) { yield(px) })
}

// Display is a no-op: the LTDC scans the framebuffer out continuously.
func (d *Displayer) Display() error { return nil }

// FillRectangle fills a clipped rectangle with c.
func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.target.FillSolid(Rect(int(x), int(y), int(width), int(height)), RGB565FromRGBA(c))
	return nil
}
