// Package lcd draws onto the discovery board panel.
//
// Drawing goes through DrawTarget: single pixels, clipped area fills, solid
// fills and clear. The panel framebuffer is continuously scanned out by the
// LTDC while it is written; there is no double buffering, so an animation
// may show tearing.
package lcd

import (
	"iter"

	"disco/hal"
)

// DrawTarget is a surface that accepts pixels.
//
// Drawing never fails. DrawPixels does not clip: callers must keep points
// inside BoundingBox. The fill operations clip to BoundingBox.
type DrawTarget interface {
	BoundingBox() Rectangle
	DrawPixels(pixels iter.Seq[Pixel])
	// FillArea pairs the points of area in row-major order with colors and
	// draws the pairs that fall inside the panel.
	FillArea(area Rectangle, colors ColorIter)
	FillSolid(area Rectangle, c RGB565)
	Clear(c RGB565)
}

// Lcd is a DrawTarget backed by a fixed panel.
type Lcd interface {
	DrawTarget
	Config() hal.DisplayConfig
}

// Controller is the part of hal.DisplayController the panel drivers use.
type Controller interface {
	ConfigLayer(layer hal.Layer, buf []uint16, format hal.PixelFormat)
	EnableLayer(layer hal.Layer)
	Reload()
	DrawPixel(layer hal.Layer, x, y int, value uint16)
}

var _ Controller = (*hal.DisplayController)(nil)
