//go:build !tinygo && cgo

package hal

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/juju/errors"
)

// otoAudio drives the host sound card directly through oto. It is used by
// the headless runner, where no Ebiten game loop exists.
type otoAudio struct {
	mu         sync.Mutex
	ctx        *oto.Context
	sampleRate uint32
}

func newOtoAudio() AudioOut { return &otoAudio{} }

func (a *otoAudio) Stream(sampleRate uint32) (DMAStream, error) {
	if err := checkSampleRate(sampleRate); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   int(sampleRate),
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			return nil, errors.Annotate(err, "host audio: oto context")
		}
		<-ready
		a.ctx = ctx
		a.sampleRate = sampleRate
	} else if a.sampleRate != sampleRate {
		return nil, errors.Errorf("host audio: oto context sample rate is fixed at %d", a.sampleRate)
	}
	return &otoStream{ctx: a.ctx, sampleRate: int(sampleRate)}, nil
}

type otoStream struct {
	mu         sync.Mutex
	ctx        *oto.Context
	sampleRate int
	player     *oto.Player
	ring       *dmaRing
}

func (s *otoStream) StartCircular(buf []int16, onHalf, onFull func()) error {
	if err := checkCircularBuffer(buf); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil {
		return errors.New("host audio: stream already running")
	}
	ring := newDMARing(buf, onHalf, onFull)
	p := s.ctx.NewPlayer(ring)
	// Bytes: half the ring, two bytes per sample.
	p.SetBufferSize(len(buf))
	p.Play()
	s.player = p
	s.ring = ring
	return nil
}

func (s *otoStream) Stop() error {
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
