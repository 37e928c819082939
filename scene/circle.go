package scene

import (
	"fmt"
	"math"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/raster"
)

// CircleMode selects how CircleScene draws its circle.
type CircleMode int

const (
	// Pixelwise fills every pixel inside the radius.
	Pixelwise CircleMode = iota
	// Contour adds a dark ring around the disc.
	Contour
	// Smooth blends one pixel wide bands at both ring edges.
	Smooth
	// Arc draws antialiased discs from cubic arcs.
	Arc
	// Fan approximates the disc with a fan of triangles around its centre.
	Fan
)

func (m CircleMode) String() string {
	switch m {
	case Pixelwise:
		return "pixelwise"
	case Contour:
		return "contour"
	case Smooth:
		return "smooth"
	case Arc:
		return "arc"
	case Fan:
		return "fan"
	}
	return fmt.Sprintf("CircleMode(%d)", int(m))
}

// CircleScene draws a circle on a small canvas.
type CircleScene struct {
	Width, Height int
	Mode          CircleMode
	Center        cg.Vec2
	Style         raster.CircleStyle
	// Slices is the number of triangles in Fan mode.
	Slices int
}

// DefaultCircleScene returns the default circle centred on a 200×200
// canvas.
func DefaultCircleScene(mode CircleMode) CircleScene {
	return CircleScene{
		Width:  200,
		Height: 200,
		Mode:   mode,
		Center: cg.V2(100, 100),
		Style:  raster.DefaultCircleStyle,
		Slices: 100,
	}
}

// HandleSlices sets the number of fan triangles. At least three are
// needed to enclose an area.
func (s CircleScene) HandleSlices(n int) (CircleScene, error) {
	if n < 3 {
		return s, fmt.Errorf("%w: %d slices", ErrInvalidSamples, n)
	}
	s.Slices = n
	return s, nil
}

// Render draws the circle in the scene's mode.
func (s CircleScene) Render() (*cg.Image, error) {
	c := newCanvas(s.Width, s.Height, s.Style.Background)
	cx, cy := s.Center.X, s.Center.Y

	switch s.Mode {
	case Pixelwise:
		raster.FillDisc(c.img, cx, cy, s.Style.Radius, s.Style.Fill)
	case Contour:
		raster.DrawContourCircle(c.img, cx, cy, s.Style)
	case Smooth:
		raster.DrawSmoothCircle(c.img, cx, cy, s.Style)
	case Arc:
		s.drawArcs(c)
	case Fan:
		if s.Slices < 3 {
			return nil, fmt.Errorf("%w: %d slices", ErrInvalidSamples, s.Slices)
		}
		s.drawFan(c)
	default:
		return nil, fmt.Errorf("scene: unknown circle mode %v", s.Mode)
	}
	return c.done()
}

// drawArcs draws a plain disc in the upper left and a ringed disc in the
// lower right, both from path arcs.
func (s CircleScene) drawArcs(c *canvas) {
	st := s.Style
	w, h := float64(s.Width), float64(s.Height)
	c.dot(cg.V2(0.3*w, 0.3*h), st.Radius, st.Fill)
	ringed := cg.V2(0.7*w, 0.7*h)
	c.dot(ringed, st.Radius+st.Border/2, st.Stroke)
	c.dot(ringed, st.Radius-st.Border/2, st.Fill)
}

// drawFan fills a disc in normalized device coordinates, centred at
// (0.3, 0.2) with radius 0.7, as Slices triangles sharing the centre.
func (s CircleScene) drawFan(c *canvas) {
	w, h := float64(s.Width), float64(s.Height)
	toCanvas := func(p cg.Vec2) cg.Vec2 {
		return cg.V2((p.X/2+0.5)*w, (-p.Y/2+0.5)*h)
	}
	center, radius := cg.V2(0.3, 0.2), 0.7
	rim := func(i int) cg.Vec2 {
		a := 2 * math.Pi * float64(i) / float64(s.Slices)
		return toCanvas(center.Add(cg.V2(math.Cos(a), math.Sin(a)).Mul(radius)))
	}

	mid := toCanvas(center)
	fan := make([][]cg.Vec2, s.Slices)
	for i := range fan {
		fan[i] = []cg.Vec2{mid, rim(i), rim(i + 1)}
	}
	c.paint(c.polygonsMask(fan...), s.Style.Fill)
}
