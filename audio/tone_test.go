package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTonePeriod(t *testing.T) {
	// 1 kHz at 8 kHz: eight frames per period.
	tone := NewTone(8000, 1000, 1000)
	buf := make([]int16, 16*2)
	tone.Fill(buf)

	for i := 0; i < 8; i++ {
		assert.Equal(t, buf[2*i], buf[2*i+1], "channels differ at frame %d", i)
		assert.InDelta(t, buf[2*i], buf[2*(i+8)], 1, "frame %d not periodic", i)
	}
	assert.Equal(t, int16(0), buf[0])
	assert.Equal(t, int16(1000), buf[4])
	assert.Equal(t, int16(-1000), buf[12])
}

func TestToneContinuesAcrossFills(t *testing.T) {
	a := NewTone(16000, 440, 8000)
	b := NewTone(16000, 440, 8000)

	whole := make([]int16, 64)
	a.Fill(whole)

	parts := make([]int16, 64)
	b.Fill(parts[:32])
	b.Fill(parts[32:])

	for i := range whole {
		assert.InDelta(t, whole[i], parts[i], 1, "sample %d", i)
	}
}

func TestSilence(t *testing.T) {
	buf := []int16{1, 2, 3, 4}
	Silence.Fill(buf)
	assert.Equal(t, []int16{0, 0, 0, 0}, buf)
}
