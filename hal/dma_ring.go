//go:build !tinygo

package hal

import (
	"io"
	"sync/atomic"
)

// dmaRing plays the role of a circular DMA stream for host audio sinks.
//
// The sink pulls bytes through Read; every time the read position crosses
// the middle or the end of buf the matching completion callback runs on the
// reading goroutine, the way a DMA interrupt would. Samples are emitted as
// 16-bit little-endian.
type dmaRing struct {
	buf    []int16
	pos    int
	onHalf func()
	onFull func()

	stopped atomic.Bool
	halves  atomic.Uint64
}

func newDMARing(buf []int16, onHalf, onFull func()) *dmaRing {
	return &dmaRing{buf: buf, onHalf: onHalf, onFull: onFull}
}

func (r *dmaRing) Read(p []byte) (int, error) {
	if r.stopped.Load() {
		return 0, io.EOF
	}
	if len(r.buf) < 2 {
		return 0, io.ErrUnexpectedEOF
	}
	half := len(r.buf) / 2
	n := 0
	for ; n+1 < len(p); n += 2 {
		s := r.buf[r.pos]
		p[n] = byte(s)
		p[n+1] = byte(s >> 8)
		r.pos++
		switch r.pos {
		case half:
			r.halves.Add(1)
			if r.onHalf != nil {
				r.onHalf()
			}
		case len(r.buf):
			r.pos = 0
			r.halves.Add(1)
			if r.onFull != nil {
				r.onFull()
			}
		}
		if r.stopped.Load() {
			n += 2
			break
		}
	}
	return n, nil
}

func (r *dmaRing) stop() { r.stopped.Store(true) }
