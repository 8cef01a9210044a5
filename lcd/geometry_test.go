package lcd

import "testing"

func TestIntersection(t *testing.T) {
	panel := Rect(0, 0, 480, 272)
	tests := []struct {
		name string
		r    Rectangle
		want Rectangle
	}{
		{"inside", Rect(10, 20, 30, 40), Rect(10, 20, 30, 40)},
		{"right edge", Rect(470, 0, 20, 10), Rect(470, 0, 10, 10)},
		{"negative origin", Rect(-5, -5, 10, 10), Rect(0, 0, 5, 5)},
		{"covers panel", Rect(-100, -100, 1000, 1000), panel},
		{"outside right", Rect(480, 0, 10, 10), Rectangle{}},
		{"outside above", Rect(0, -10, 10, 10), Rectangle{}},
		{"zero width", Rect(5, 5, 0, 10), Rectangle{}},
		{"negative size", Rect(5, 5, -3, 10), Rectangle{}},
	}
	for _, tt := range tests {
		if got := tt.r.Intersection(panel); got != tt.want {
			t.Fatalf("%s: Intersection() = %+v, want %+v", tt.name, got, tt.want)
		}
		if got := panel.Intersection(tt.r); got != tt.want {
			t.Fatalf("%s: reversed Intersection() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	r := Rect(2, 3, 4, 5)
	if !r.Contains(Point{X: 2, Y: 3}) {
		t.Fatal("top-left should be inside")
	}
	if !r.Contains(Point{X: 5, Y: 7}) {
		t.Fatal("last pixel should be inside")
	}
	if r.Contains(Point{X: 6, Y: 7}) || r.Contains(Point{X: 5, Y: 8}) {
		t.Fatal("bottom-right is exclusive")
	}
	if r.Contains(Point{X: 1, Y: 3}) {
		t.Fatal("left of origin should be outside")
	}
}

func TestPointsRowMajor(t *testing.T) {
	var got []Point
	for p := range Rect(-1, 4, 3, 2).Points() {
		got = append(got, p)
	}
	want := []Point{{-1, 4}, {0, 4}, {1, 4}, {-1, 5}, {0, 5}, {1, 5}}
	if len(got) != len(want) {
		t.Fatalf("Points() yielded %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Points()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPointsStopsEarly(t *testing.T) {
	n := 0
	for range Rect(0, 0, 100, 100).Points() {
		n++
		if n == 7 {
			break
		}
	}
	if n != 7 {
		t.Fatalf("n = %d, want 7", n)
	}
}

func TestColorsExhaust(t *testing.T) {
	next := Colors([]RGB565{Red, Green})
	for i, want := range []RGB565{Red, Green} {
		c, ok := next()
		if !ok || c != want {
			t.Fatalf("next() #%d = %v,%v", i, c, ok)
		}
	}
	if _, ok := next(); ok {
		t.Fatal("next() after end: ok = true")
	}
}
