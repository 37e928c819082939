package scene

import (
	"fmt"
	"math"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/raster"
)

// LineScene shows a Bresenham line on a grid of enlarged pixels.
type LineScene struct {
	Width, Height int
	Segment       raster.Segment
	// PixelScale is the edge length of one logical pixel in canvas pixels.
	PixelScale int
}

// DefaultLineScene returns a diagonal line on a 200×200 canvas with
// 10 pixel wide logical pixels.
func DefaultLineScene() LineScene {
	return LineScene{
		Width:  200,
		Height: 200,
		Segment: raster.Segment{
			Start: cg.V2(1, 1),
			End:   cg.V2(18, 18),
			Color: cg.Black,
		},
		PixelScale: 10,
	}
}

// HandlePointer moves the start point to the pressed logical pixel, or
// the end point when Ctrl is held.
func (s LineScene) HandlePointer(e PointerEvent) LineScene {
	p := cg.V2(e.X, e.Y).Div(float64(s.PixelScale))
	if e.Ctrl {
		s.Segment.End = p
	} else {
		s.Segment.Start = p
	}
	return s
}

// HandlePixelScale changes the logical pixel size to v, scaling the
// endpoints so the line keeps its place on the canvas.
func (s LineScene) HandlePixelScale(v int) (LineScene, error) {
	if v < 1 {
		return s, fmt.Errorf("%w: %d", ErrInvalidScale, v)
	}
	s.Segment = s.Segment.Rescale(float64(s.PixelScale) / float64(v))
	s.PixelScale = v
	return s, nil
}

// Render draws the line with its start pixel in red and its end pixel in
// green.
func (s LineScene) Render() (*cg.Image, error) {
	if s.PixelScale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, s.PixelScale)
	}
	c := newCanvas(s.Width, s.Height, cg.White)
	raster.DrawSegment(c.img, s.Segment, s.PixelScale)

	p0, p1 := s.Segment.Pixels()
	c.img.SetPixelScaled(p0.X, p0.Y, s.PixelScale, cg.Red)
	c.img.SetPixelScaled(p1.X, p1.Y, s.PixelScale, cg.Green)
	return c.done()
}

// LogicalSize returns how many logical pixels fit across the canvas.
func (s LineScene) LogicalSize() (w, h int) {
	return int(math.Ceil(float64(s.Width) / float64(s.PixelScale))),
		int(math.Ceil(float64(s.Height) / float64(s.PixelScale)))
}
