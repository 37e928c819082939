// Package raster draws lines and circles into a cg.Image.
//
// Lines use the integer-only Bresenham algorithm. An arbitrary pair of
// endpoints is first classified into an octant, mapped to the canonical
// octant (left to right, slope in [-1, 1]), stepped there, and mapped back
// on output. The path always contains both endpoints, so a line of major
// extent n yields exactly n+1 pixels, and swapping the endpoints yields
// the same pixels in the same order.
package raster

import "iter"

// Pixel is an integer pixel coordinate.
type Pixel struct {
	X, Y int
}

// MaxCoord bounds the endpoint coordinates the line functions accept.
// Endpoints outside [-MaxCoord, MaxCoord] are clamped into that range,
// which keeps every extent and error term within a 32-bit int.
const MaxCoord = 1 << 28

func (p Pixel) clamp() Pixel {
	return Pixel{X: min(max(p.X, -MaxCoord), MaxCoord), Y: min(max(p.Y, -MaxCoord), MaxCoord)}
}

// Line returns the Bresenham pixel path from p0 to p1, both included.
// A zero-length line yields a single pixel. Endpoints are clamped to
// MaxCoord.
func Line(p0, p1 Pixel) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		o, a, b := classify(p0, p1)

		dx := b.X - a.X
		dy := abs(b.Y - a.Y)
		dde := -2 * dy
		ddne := 2 * (dx - dy)
		e := dx - 2*dy

		x, y := a.X, a.Y
		for i := 0; i <= dx; i++ {
			if !yield(o.fromCanonical(x, y)) {
				return
			}
			x++
			if e < 0 {
				y += o.yStep
				e += ddne
			} else {
				e += dde
			}
		}
	}
}

// Walk calls fn for every pixel on the path from p0 to p1.
func Walk(p0, p1 Pixel, fn func(Pixel)) {
	for p := range Line(p0, p1) {
		fn(p)
	}
}

// Pixels returns the path from p0 to p1 as a slice.
func Pixels(p0, p1 Pixel) []Pixel {
	out := make([]Pixel, 0, Length(p0, p1))
	for p := range Line(p0, p1) {
		out = append(out, p)
	}
	return out
}

// Length returns the number of pixels on the path from p0 to p1:
// the larger of |Δx| and |Δy|, plus one.
func Length(p0, p1 Pixel) int {
	p0, p1 = p0.clamp(), p1.clamp()
	return max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1
}

// octant describes the transform between a line's own coordinates and
// the canonical octant where x increases by one per step and y changes
// by at most one.
type octant struct {
	// steep lines (|Δy| > |Δx|) are stepped along y: x and y are swapped.
	steep bool
	// yStep is +1 for ascending and -1 for descending canonical lines.
	yStep int
}

// classify picks the octant of the segment p0-p1 and returns its
// endpoints in canonical coordinates, ordered so that a.X <= b.X.
//
// The steepness test compares integer extents, so vertical lines need no
// slope division. The returned endpoints depend only on the unordered
// pair {p0, p1}.
func classify(p0, p1 Pixel) (o octant, a, b Pixel) {
	a, b = p0.clamp(), p1.clamp()
	if a.X > b.X {
		a, b = b, a
	}

	if abs(b.Y-a.Y) > b.X-a.X {
		o.steep = true
		ax, ay := o.toCanonical(a)
		bx, by := o.toCanonical(b)
		a, b = Pixel{X: ax, Y: ay}, Pixel{X: bx, Y: by}
		if a.X > b.X {
			a, b = b, a
		}
	}

	o.yStep = 1
	if b.Y < a.Y {
		o.yStep = -1
	}
	return o, a, b
}

// fromCanonical maps a canonical coordinate back to image space.
func (o octant) fromCanonical(x, y int) Pixel {
	if o.steep {
		return Pixel{X: y, Y: x}
	}
	return Pixel{X: x, Y: y}
}

// toCanonical maps an image-space pixel into the octant's canonical
// coordinates. It is the inverse of fromCanonical.
func (o octant) toCanonical(p Pixel) (x, y int) {
	if o.steep {
		return p.Y, p.X
	}
	return p.X, p.Y
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
