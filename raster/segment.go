package raster

import (
	"context"
	"log/slog"
	"math"

	"github.com/gogpu/cg"
)

// Segment is a line between two points in logical pixel units, drawn in a
// single color. Endpoints are floating point because they usually come
// from pointer positions divided by a pixel scale.
type Segment struct {
	Start, End cg.Vec2
	Color      cg.Color
}

// Pixels returns the integer endpoints of the segment. Coordinates are
// floored, so every point inside a logical pixel maps to that pixel.
func (s Segment) Pixels() (p0, p1 Pixel) {
	return floorPixel(s.Start), floorPixel(s.End)
}

// Rescale returns the segment with both endpoints multiplied by f.
func (s Segment) Rescale(f float64) Segment {
	s.Start = s.Start.Mul(f)
	s.End = s.End.Mul(f)
	return s
}

// DrawSegment rasterizes s into img, painting every logical pixel as a
// scale×scale block. It returns the number of logical pixels drawn,
// including those clipped by the image bounds.
func DrawSegment(img *cg.Image, s Segment, scale int) int {
	p0, p1 := s.Pixels()
	if log := cg.Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		o, _, _ := classify(p0, p1)
		log.Debug("raster: segment",
			"from", p0, "to", p1, "steep", o.steep, "yStep", o.yStep, "scale", scale)
	}

	n := 0
	for p := range Line(p0, p1) {
		img.SetPixelScaled(p.X, p.Y, scale, s.Color)
		n++
	}
	return n
}

// DrawLine draws a one-pixel Bresenham line from p0 to p1.
func DrawLine(img *cg.Image, p0, p1 Pixel, c cg.Color) {
	for p := range Line(p0, p1) {
		img.SetPixel(p.X, p.Y, c)
	}
}

// DrawDashed draws a Bresenham line with a dash pattern of on painted
// pixels followed by off skipped pixels, starting at p0. A non-positive
// off draws a solid line; a non-positive on draws nothing.
func DrawDashed(img *cg.Image, p0, p1 Pixel, c cg.Color, on, off int) {
	if on <= 0 {
		return
	}
	if off <= 0 {
		DrawLine(img, p0, p1, c)
		return
	}

	// Walk from p0 so the pattern is anchored at the start point even
	// when classification reverses the path.
	path := Pixels(p0, p1)
	if len(path) > 1 && path[0] != p0 {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	period := on + off
	for i, p := range path {
		if i%period < on {
			img.SetPixel(p.X, p.Y, c)
		}
	}
}

// DrawPolyline draws consecutive points joined by lines. When closed is
// set, the last point is joined back to the first.
func DrawPolyline(img *cg.Image, pts []Pixel, c cg.Color, closed bool) {
	for i := 1; i < len(pts); i++ {
		DrawLine(img, pts[i-1], pts[i], c)
	}
	if closed && len(pts) > 2 {
		DrawLine(img, pts[len(pts)-1], pts[0], c)
	}
}

// Round converts a point to the nearest pixel.
func Round(p cg.Vec2) Pixel {
	return Pixel{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

func floorPixel(p cg.Vec2) Pixel {
	return Pixel{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}
