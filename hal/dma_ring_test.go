//go:build !tinygo

package hal

import (
	"io"
	"testing"
)

func TestDMARingCallbacks(t *testing.T) {
	buf := []int16{1, 2, 3, 4, 5, 6, 7, 8}
	var events []string
	r := newDMARing(buf,
		func() { events = append(events, "half") },
		func() { events = append(events, "full") },
	)

	p := make([]byte, 6)
	n, err := r.Read(p)
	if err != nil || n != 6 {
		t.Fatalf("Read() = %d, %v", n, err)
	}
	if len(events) != 0 {
		t.Fatalf("events after 3 samples = %q", events)
	}

	p = make([]byte, 12)
	if _, err := r.Read(p); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(events) != 2 || events[0] != "half" || events[1] != "full" {
		t.Fatalf("events = %q, want [half full]", events)
	}
	// 3 samples then 6: the second read ends with 8, 1.
	if p[8] != 8 || p[10] != 1 {
		t.Fatalf("samples = %v", p)
	}
	if got := r.halves.Load(); got != 2 {
		t.Fatalf("halves = %d, want 2", got)
	}
}

func TestDMARingLittleEndian(t *testing.T) {
	r := newDMARing([]int16{-2, 0x1234, 0, 0}, nil, nil)
	p := make([]byte, 4)
	if _, err := r.Read(p); err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []byte{0xFE, 0xFF, 0x34, 0x12}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("p = % x, want % x", p, want)
		}
	}
}

func TestDMARingRefillSeesNextLap(t *testing.T) {
	buf := make([]int16, 4)
	lap := int16(0)
	refill := func(lo, hi int) func() {
		return func() {
			for i := lo; i < hi; i++ {
				buf[i] = lap
			}
		}
	}
	r := newDMARing(buf, refill(0, 2), func() { lap++; refill(2, 4)() })

	p := make([]byte, 16)
	if _, err := r.Read(p); err != nil {
		t.Fatalf("Read: %v", err)
	}
	// The second half is refilled for lap 1 before it is read again; the
	// first half only after its lap 1 read.
	got := []int16{}
	for i := 0; i < len(p); i += 2 {
		got = append(got, int16(uint16(p[i])|uint16(p[i+1])<<8))
	}
	want := []int16{0, 0, 0, 0, 0, 0, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("samples = %v, want %v", got, want)
		}
	}
}

func TestDMARingStop(t *testing.T) {
	r := newDMARing(make([]int16, 4), nil, nil)
	r.stop()
	if _, err := r.Read(make([]byte, 4)); err != io.EOF {
		t.Fatalf("Read after stop: err = %v, want EOF", err)
	}
}
