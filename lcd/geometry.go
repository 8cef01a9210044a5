package lcd

import "iter"

// Point is a pixel coordinate. The origin is the top-left corner, x grows
// right and y grows down. Points may lie outside the panel.
type Point struct {
	X, Y int
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Rectangle is an area given by its top-left corner and size.
type Rectangle struct {
	TopLeft Point
	Size    Size
}

// Rect is shorthand for a rectangle at (x, y) of w×h pixels.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{TopLeft: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// BottomRight returns the first point past the rectangle on both axes.
func (r Rectangle) BottomRight() Point {
	return Point{X: r.TopLeft.X + r.Size.Width, Y: r.TopLeft.Y + r.Size.Height}
}

// Empty reports whether r covers no pixels.
func (r Rectangle) Empty() bool { return r.Size.Empty() }

// Contains reports whether p lies inside r.
func (r Rectangle) Contains(p Point) bool {
	br := r.BottomRight()
	return p.X >= r.TopLeft.X && p.X < br.X &&
		p.Y >= r.TopLeft.Y && p.Y < br.Y
}

// Intersection returns the area covered by both r and o. Rectangles that do
// not overlap give a zero rectangle.
func (r Rectangle) Intersection(o Rectangle) Rectangle {
	if r.Empty() || o.Empty() {
		return Rectangle{}
	}
	rb, ob := r.BottomRight(), o.BottomRight()
	x0 := max(r.TopLeft.X, o.TopLeft.X)
	y0 := max(r.TopLeft.Y, o.TopLeft.Y)
	x1 := min(rb.X, ob.X)
	y1 := min(rb.Y, ob.Y)
	if x0 >= x1 || y0 >= y1 {
		return Rectangle{}
	}
	return Rect(x0, y0, x1-x0, y1-y0)
}

// Points yields every point of r in row-major order.
func (r Rectangle) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.Empty() {
			return
		}
		br := r.BottomRight()
		for y := r.TopLeft.Y; y < br.Y; y++ {
			for x := r.TopLeft.X; x < br.X; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Pixel is a colored point.
type Pixel struct {
	Point Point
	Color RGB565
}
