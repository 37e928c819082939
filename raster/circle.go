package raster

import (
	"math"

	"github.com/gogpu/cg"
)

// CircleStyle describes a filled circle with a contour ring.
//
// The ring is Border wide and centred on Radius, so it covers distances
// [Radius-Border/2, Radius+Border/2] from the centre. Background is only
// used by DrawSmoothCircle as the colour the outer edge fades into.
type CircleStyle struct {
	Radius     float64
	Border     float64
	Fill       cg.Color
	Stroke     cg.Color
	Background cg.Color
}

// DefaultCircleStyle is a light green disc of radius 50 with a 10 pixel
// dark green contour on white.
var DefaultCircleStyle = CircleStyle{
	Radius:     50,
	Border:     10,
	Fill:       cg.LightGreen,
	Stroke:     cg.DarkGreen,
	Background: cg.White,
}

func (s CircleStyle) inner() float64 { return s.Radius - s.Border/2 }
func (s CircleStyle) outer() float64 { return s.Radius + s.Border/2 }

// FillDisc paints every pixel whose distance to (cx, cy) is at most r.
func FillDisc(img *cg.Image, cx, cy, r float64, c cg.Color) {
	eachInRadius(img, cx, cy, r, func(x, y int, d float64) {
		if d <= r {
			img.SetPixel(x, y, c)
		}
	})
}

// DrawContourCircle paints a disc with a hard-edged contour ring.
func DrawContourCircle(img *cg.Image, cx, cy float64, s CircleStyle) {
	rIn, rOut := s.inner(), s.outer()
	eachInRadius(img, cx, cy, rOut, func(x, y int, d float64) {
		switch {
		case d < rIn:
			img.SetPixel(x, y, s.Fill)
		case d <= rOut:
			img.SetPixel(x, y, s.Stroke)
		}
	})
}

// DrawSmoothCircle paints a contour circle whose ring edges are blended
// over one pixel: Fill fades into Stroke across [rIn-1, rIn] and Stroke
// fades into Background across [rOut, rOut+1].
func DrawSmoothCircle(img *cg.Image, cx, cy float64, s CircleStyle) {
	rIn, rOut := s.inner(), s.outer()
	eachInRadius(img, cx, cy, rOut+1, func(x, y int, d float64) {
		switch {
		case d < rIn-1:
			img.SetPixel(x, y, s.Fill)
		case d < rIn:
			img.SetPixel(x, y, s.Fill.Lerp(s.Stroke, d-(rIn-1)))
		case d <= rOut:
			img.SetPixel(x, y, s.Stroke)
		case d <= rOut+1:
			img.SetPixel(x, y, s.Stroke.Lerp(s.Background, d-rOut))
		}
	})
}

// eachInRadius calls fn for every image pixel in the bounding box of the
// circle of radius r around (cx, cy), with the pixel's distance to the
// centre.
func eachInRadius(img *cg.Image, cx, cy, r float64, fn func(x, y int, d float64)) {
	if r < 0 {
		return
	}
	x0 := max(0, int(math.Floor(cx-r)))
	y0 := max(0, int(math.Floor(cy-r)))
	x1 := min(img.Width()-1, int(math.Ceil(cx+r)))
	y1 := min(img.Height()-1, int(math.Ceil(cy+r)))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(x, y, math.Hypot(float64(x)-cx, float64(y)-cy))
		}
	}
}
