// Package audio streams PCM to the codec through a circular DMA transfer.
//
// Out keeps one buffer split in two halves. While the DMA stream reads one
// half, the half it just finished is refilled from a Source.
package audio

import (
	"sync"
	"sync/atomic"

	"disco/hal"

	"github.com/juju/errors"
)

// Source produces interleaved stereo 16-bit samples.
type Source interface {
	// Fill overwrites dst completely. It runs on the DMA completion path and
	// must not block.
	Fill(dst []int16)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(dst []int16)

func (f SourceFunc) Fill(dst []int16) { f(dst) }

// Out is a double-buffered audio output.
type Out struct {
	stream hal.DMAStream
	src    Source
	buf    []int16

	mu      sync.Mutex
	running bool
	halves  atomic.Uint64
}

// NewOut returns an output with framesPerHalf stereo frames in each half of
// the circular buffer.
func NewOut(stream hal.DMAStream, framesPerHalf int, src Source) (*Out, error) {
	if stream == nil {
		return nil, errors.New("audio: nil stream")
	}
	if src == nil {
		return nil, errors.New("audio: nil source")
	}
	if framesPerHalf <= 0 {
		return nil, errors.Errorf("audio: invalid half size %d", framesPerHalf)
	}
	return &Out{
		stream: stream,
		src:    src,
		buf:    make([]int16, framesPerHalf*2*2),
	}, nil
}

// Start fills both halves and starts the circular transfer.
func (o *Out) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running {
		return nil
	}
	half := len(o.buf) / 2
	o.src.Fill(o.buf[:half])
	o.src.Fill(o.buf[half:])
	if err := o.stream.StartCircular(o.buf, o.refillFirst, o.refillSecond); err != nil {
		return errors.Annotate(err, "audio: start stream")
	}
	o.running = true
	return nil
}

// Stop halts the transfer. The output can be started again.
func (o *Out) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.running {
		return nil
	}
	o.running = false
	return errors.Annotate(o.stream.Stop(), "audio: stop stream")
}

// Halves returns how many buffer halves have been played and refilled.
func (o *Out) Halves() uint64 { return o.halves.Load() }

func (o *Out) refillFirst() {
	o.src.Fill(o.buf[:len(o.buf)/2])
	o.halves.Add(1)
}

func (o *Out) refillSecond() {
	o.src.Fill(o.buf[len(o.buf)/2:])
	o.halves.Add(1)
}
