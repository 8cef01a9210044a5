package app

import (
	"iter"
	"math"

	"disco/lcd"
)

// pacmanSteps is the number of frames from wide open to closed.
const pacmanSteps = 10

// pacman animates a mouth opening and closing over 2*pacmanSteps+1 frames.
// Angles are in degrees, clockwise from the positive x axis (y grows down).
type pacman struct {
	clip     lcd.Rectangle
	body     lcd.Rectangle
	eye      lcd.Rectangle
	progress int
}

func newPacman(bounds lcd.Rectangle) *pacman {
	w, h := bounds.Size.Width, bounds.Size.Height
	return &pacman{
		clip: bounds,
		body: lcd.Rect(w/2-h/2, 5, h-10, h-10),
		eye:  lcd.Rect(w/2+32, h/2-80, 15, 15),
	}
}

// mouth is half the opening angle for the current frame.
func (p *pacman) mouth() int {
	d := p.progress - pacmanSteps
	if d < 0 {
		d = -d
	}
	return d * 30 / pacmanSteps
}

func (p *pacman) draw(t lcd.DrawTarget) {
	m := float64(p.mouth())
	t.DrawPixels(sector(p.body, 360-m, 2*m, style{fill: lcd.White, stroke: lcd.White, width: 2}, p.clip))
	t.DrawPixels(sector(p.body, m, 360-2*m, style{fill: lcd.Yellow, stroke: lcd.Black, width: 2}, p.clip))
	t.DrawPixels(sector(p.eye, 0, 360, style{fill: lcd.Black, stroke: lcd.Black, width: 1}, p.clip))
}

func (p *pacman) advance() {
	p.progress = (p.progress + 1) % (2*pacmanSteps + 1)
}

// style paints the interior with fill and a band of width pixels along
// the outline with stroke.
type style struct {
	fill   lcd.RGB565
	stroke lcd.RGB565
	width  float64
}

// sector yields the pixels of the disc inscribed in box that lie between
// start and start+sweep, restricted to clip. The stroke runs inside the arc
// and, for a partial disc, along both radii.
func sector(box lcd.Rectangle, start, sweep float64, st style, clip lcd.Rectangle) iter.Seq[lcd.Pixel] {
	return func(yield func(lcd.Pixel) bool) {
		if sweep <= 0 {
			return
		}
		r := float64(box.Size.Width) / 2
		cx := float64(box.TopLeft.X) + r
		cy := float64(box.TopLeft.Y) + r
		for pt := range box.Intersection(clip).Points() {
			dx := float64(pt.X) + 0.5 - cx
			dy := float64(pt.Y) + 0.5 - cy
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}
			c := st.fill
			if d > r-st.width {
				c = st.stroke
			}
			if sweep < 360 {
				from := offset(degrees(dx, dy), start)
				if from > sweep {
					continue
				}
				if edgeDistance(d, min(from, sweep-from)) < st.width {
					c = st.stroke
				}
			}
			if !yield(lcd.Pixel{Point: pt, Color: c}) {
				return
			}
		}
	}
}

// edgeDistance is how far a point at distance d from the center lies from a
// radius that is off by a degrees.
func edgeDistance(d, a float64) float64 {
	if a >= 90 {
		return d
	}
	return d * math.Sin(a*math.Pi/180)
}

func degrees(dx, dy float64) float64 {
	a := math.Atan2(dy, dx) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// offset is the clockwise angle from start to a, in [0, 360).
func offset(a, start float64) float64 {
	return math.Mod(a-start+720, 360)
}
