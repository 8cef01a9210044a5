//go:build !tinygo && cgo

package hal

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/juju/errors"
)

// ebitenAudio routes the serial audio output to Ebiten's audio package.
// Ebiten fixes the sample rate per process, so every stream shares one rate.
type ebitenAudio struct {
	mu  sync.Mutex
	ctx *audio.Context
}

func newEbitenAudio() AudioOut { return &ebitenAudio{} }

func (a *ebitenAudio) Stream(sampleRate uint32) (DMAStream, error) {
	if err := checkSampleRate(sampleRate); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		a.ctx = audio.NewContext(int(sampleRate))
	} else if a.ctx.SampleRate() != int(sampleRate) {
		return nil, errors.Errorf("host audio: ebiten audio context sample rate is fixed at %d", a.ctx.SampleRate())
	}
	return &ebitenStream{ctx: a.ctx}, nil
}

type ebitenStream struct {
	mu     sync.Mutex
	ctx    *audio.Context
	player *audio.Player
	ring   *dmaRing
}

func (s *ebitenStream) StartCircular(buf []int16, onHalf, onFull func()) error {
	if err := checkCircularBuffer(buf); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil {
		return errors.New("host audio: stream already running")
	}
	ring := newDMARing(buf, onHalf, onFull)
	p, err := s.ctx.NewPlayer(ring)
	if err != nil {
		return errors.Annotate(err, "host audio: new player")
	}
	p.SetBufferSize(ringDuration(len(buf), s.ctx.SampleRate()))
	p.Play()
	s.player = p
	s.ring = ring
	return nil
}

func (s *ebitenStream) Stop() error {
	s.mu.Lock()
	p := s.player
	ring := s.ring
	s.player = nil
	s.ring = nil
	s.mu.Unlock()

	if ring != nil {
		ring.stop()
	}
	if p != nil {
		return p.Close()
	}
	return nil
}

// ringDuration is the playback time of half the ring, so the sink never
// buffers further ahead than the half being refilled.
func ringDuration(samples, sampleRate int) time.Duration {
	frames := samples / 2 / 2
	d := time.Duration(frames) * time.Second / time.Duration(sampleRate)
	if d < 10*time.Millisecond {
		d = 10 * time.Millisecond
	}
	return d
}
