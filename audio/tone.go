package audio

import "math"

// Tone is a sine test tone, identical on both channels.
type Tone struct {
	amplitude float64
	phase     float64
	step      float64
}

// NewTone returns a tone of hz at sampleRate frames per second.
func NewTone(sampleRate, hz uint32, amplitude int16) *Tone {
	t := &Tone{amplitude: float64(amplitude)}
	if sampleRate > 0 {
		t.step = 2 * math.Pi * float64(hz) / float64(sampleRate)
	}
	return t
}

func (t *Tone) Fill(dst []int16) {
	for i := 0; i+1 < len(dst); i += 2 {
		s := int16(math.Round(t.amplitude * math.Sin(t.phase)))
		dst[i] = s
		dst[i+1] = s
		t.phase += t.step
		if t.phase >= 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
	}
}

// Silence fills with zeros.
var Silence = SourceFunc(func(dst []int16) { clear(dst) })
