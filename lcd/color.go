package lcd

import "image/color"

// RGB565 is a color with 5-bit red, 6-bit green and 5-bit blue channels.
// Channel values never exceed their bit width.
type RGB565 struct {
	r, g, b uint8
}

// NewRGB565 builds a color from raw channel values. Bits above the channel
// width are dropped.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565{r: r & 0x1F, g: g & 0x3F, b: b & 0x1F}
}

var (
	Black   = NewRGB565(0, 0, 0)
	White   = NewRGB565(31, 63, 31)
	Red     = NewRGB565(31, 0, 0)
	Green   = NewRGB565(0, 63, 0)
	Blue    = NewRGB565(0, 0, 31)
	Yellow  = NewRGB565(31, 63, 0)
	Cyan    = NewRGB565(0, 63, 31)
	Magenta = NewRGB565(31, 0, 31)
)

func (c RGB565) R() uint8 { return c.r }
func (c RGB565) G() uint8 { return c.g }
func (c RGB565) B() uint8 { return c.b }

// Pack encodes c as rrrrrggggggbbbbb.
func (c RGB565) Pack() uint16 {
	return uint16(c.b)&0x1F |
		(uint16(c.g)&0x3F)<<5 |
		(uint16(c.r)&0x1F)<<11
}

// UnpackRGB565 decodes a packed pixel.
func UnpackRGB565(v uint16) RGB565 {
	return RGB565{
		r: uint8(v>>11) & 0x1F,
		g: uint8(v>>5) & 0x3F,
		b: uint8(v) & 0x1F,
	}
}

// RGB565FromRGBA truncates an 8-bit per channel color.
func RGB565FromRGBA(c color.RGBA) RGB565 {
	return RGB565{r: c.R >> 3, g: c.G >> 2, b: c.B >> 3}
}

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0xFFFF / 0x1F
	g = uint32(c.g) * 0xFFFF / 0x3F
	b = uint32(c.b) * 0xFFFF / 0x1F
	return r, g, b, 0xFFFF
}

// RGB565Model converts any color to RGB565.
var RGB565Model = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB565{r: uint8(r >> 11), g: uint8(g >> 10), b: uint8(b >> 11)}
})

// RGBA8 expands c to 8 bits per channel, replicating the high bits.
func (c RGB565) RGBA8() color.RGBA {
	return color.RGBA{
		R: c.r<<3 | c.r>>2,
		G: c.g<<2 | c.g>>4,
		B: c.b<<3 | c.b>>2,
		A: 0xFF,
	}
}
