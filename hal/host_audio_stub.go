//go:build !tinygo && !cgo

package hal

// Audio sinks need cgo on the host.
func newEbitenAudio() AudioOut { return nil }
func newOtoAudio() AudioOut    { return nil }
