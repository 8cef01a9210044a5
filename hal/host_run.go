//go:build !tinygo

package hal

// App is what the host runners drive: Step once per tick, Close when the
// runner returns.
type App interface {
	Step() error
	Close() error
}

// RunConfig controls the host runners.
type RunConfig struct {
	// Hz is the step rate: window TPS or headless tick rate.
	Hz int
	// Ticks stops the headless runner after N steps (0 = run forever).
	Ticks uint64
	// Scale multiplies the panel size for the window.
	Scale int
	// Audio enables the host sound sink.
	Audio bool
	// Snapshot is a BMP file written with the last headless frame.
	Snapshot string
	// Title overrides the window title.
	Title string
}

func (c *RunConfig) normalize() {
	if c.Hz <= 0 {
		c.Hz = 60
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
}
