package hal

// DisplayConfig holds the fixed timing of a parallel RGB panel.
//
// Horizontal values are in pixel clocks, vertical values in lines.
type DisplayConfig struct {
	ActiveWidth  uint16
	ActiveHeight uint16
	HBackPorch   uint16
	HFrontPorch  uint16
	HSync        uint16
	VBackPorch   uint16
	VFrontPorch  uint16
	VSync        uint16
	FrameRate    uint16

	// Polarities are active high when true.
	HSyncPol        bool
	VSyncPol        bool
	NoDataEnablePol bool
	PixelClockPol   bool
}

// Valid reports whether every dimension, porch, pulse and the refresh rate
// are positive.
func (c DisplayConfig) Valid() bool {
	return c.ActiveWidth > 0 && c.ActiveHeight > 0 &&
		c.HBackPorch > 0 && c.HFrontPorch > 0 && c.HSync > 0 &&
		c.VBackPorch > 0 && c.VFrontPorch > 0 && c.VSync > 0 &&
		c.FrameRate > 0
}

// TotalWidth is the line length including sync and porches.
func (c DisplayConfig) TotalWidth() uint32 {
	return uint32(c.HSync) + uint32(c.HBackPorch) + uint32(c.ActiveWidth) + uint32(c.HFrontPorch)
}

// TotalHeight is the frame length including sync and porches.
func (c DisplayConfig) TotalHeight() uint32 {
	return uint32(c.VSync) + uint32(c.VBackPorch) + uint32(c.ActiveHeight) + uint32(c.VFrontPorch)
}

// PixelClockHz is the dot clock needed for FrameRate.
func (c DisplayConfig) PixelClockHz() uint32 {
	return c.TotalWidth() * c.TotalHeight() * uint32(c.FrameRate)
}

// Timing is the LTDC synchronization register set derived from a config.
//
// Each word packs the horizontal value in bits 27:16 and the vertical value
// in bits 10:0, both as accumulated positions minus one.
type Timing struct {
	SSCR uint32
	BPCR uint32
	AWCR uint32
	TWCR uint32
}

// Timing computes the synchronization words for c.
func (c DisplayConfig) Timing() Timing {
	hs := uint32(c.HSync)
	vs := uint32(c.VSync)
	ahbp := hs + uint32(c.HBackPorch)
	avbp := vs + uint32(c.VBackPorch)
	aaw := ahbp + uint32(c.ActiveWidth)
	aah := avbp + uint32(c.ActiveHeight)
	return Timing{
		SSCR: packTiming(hs-1, vs-1),
		BPCR: packTiming(ahbp-1, avbp-1),
		AWCR: packTiming(aaw-1, aah-1),
		TWCR: packTiming(c.TotalWidth()-1, c.TotalHeight()-1),
	}
}

func packTiming(h, v uint32) uint32 {
	return (h&0xFFF)<<16 | v&0x7FF
}

// HorizontalStart is the first active pixel clock (AHBP+1).
func (t Timing) HorizontalStart() uint32 { return (t.BPCR>>16)&0xFFF + 1 }

// VerticalStart is the first active line (AVBP+1).
func (t Timing) VerticalStart() uint32 { return t.BPCR&0x7FF + 1 }
