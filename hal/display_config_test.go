package hal

import "testing"

func rk043fn48h() DisplayConfig {
	return DisplayConfig{
		ActiveWidth:  480,
		ActiveHeight: 272,
		HBackPorch:   13,
		HFrontPorch:  30,
		HSync:        41,
		VBackPorch:   2,
		VFrontPorch:  2,
		VSync:        10,
		FrameRate:    60,
	}
}

func TestDisplayConfigTiming(t *testing.T) {
	cfg := rk043fn48h()
	got := cfg.Timing()
	want := Timing{
		SSCR: 0x00280009,
		BPCR: 0x0035000B,
		AWCR: 0x0215011B,
		TWCR: 0x0233011D,
	}
	if got != want {
		t.Fatalf("Timing() = %#08x, want %#08x", got, want)
	}
	if hs, vs := got.HorizontalStart(), got.VerticalStart(); hs != 54 || vs != 12 {
		t.Fatalf("start = %d,%d, want 54,12", hs, vs)
	}
}

func TestDisplayConfigClock(t *testing.T) {
	cfg := rk043fn48h()
	if w, h := cfg.TotalWidth(), cfg.TotalHeight(); w != 564 || h != 286 {
		t.Fatalf("total = %dx%d, want 564x286", w, h)
	}
	if hz := cfg.PixelClockHz(); hz != 9_678_240 {
		t.Fatalf("PixelClockHz() = %d, want 9678240", hz)
	}
}

func TestDisplayConfigValid(t *testing.T) {
	if !rk043fn48h().Valid() {
		t.Fatal("RK043FN48H config should be valid")
	}
	cfg := rk043fn48h()
	cfg.VFrontPorch = 0
	if cfg.Valid() {
		t.Fatal("zero porch should be invalid")
	}
	if (DisplayConfig{}).Valid() {
		t.Fatal("zero config should be invalid")
	}
}
