package scene

import (
	"fmt"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/camera"
	"github.com/gogpu/cg/internal/label"
)

// ProjectionMode selects how ProjectionScene maps points to the image
// plane.
type ProjectionMode int

const (
	// Orthogonal projects along the view direction.
	Orthogonal ProjectionMode = iota
	// Perspective projects through the eye point.
	Perspective
)

func (m ProjectionMode) String() string {
	switch m {
	case Orthogonal:
		return "orthogonal"
	case Perspective:
		return "perspective"
	}
	return fmt.Sprintf("ProjectionMode(%d)", int(m))
}

// ProjectionScene projects a polygon onto a 1D image plane at z =
// ImagePlane. World points [x, z] are drawn at canvas (z, x).
type ProjectionScene struct {
	Width, Height int
	Mode          ProjectionMode
	Eye           cg.Vec2
	ImagePlane    float64
	Polygon       []cg.Vec2
}

// DefaultProjectionScene returns a square in front of an image plane at
// z = 150 with the eye at (150, 10).
func DefaultProjectionScene(mode ProjectionMode) ProjectionScene {
	return ProjectionScene{
		Width:      600,
		Height:     300,
		Mode:       mode,
		Eye:        camera.DefaultEye,
		ImagePlane: 150,
		Polygon: []cg.Vec2{
			cg.V2(100, 400), cg.V2(100, 500), cg.V2(200, 500), cg.V2(200, 400),
		},
	}
}

// Project returns the image plane coordinate of every polygon vertex.
func (s ProjectionScene) Project() ([]float64, error) {
	out := make([]float64, len(s.Polygon))
	for i, p := range s.Polygon {
		if s.Mode == Orthogonal {
			out[i] = camera.OrthogonalProject(p)
			continue
		}
		x, err := camera.PerspectiveProject(s.Eye, s.ImagePlane, p)
		if err != nil {
			return nil, fmt.Errorf("scene: vertex %d: %w", i, err)
		}
		out[i] = x
	}
	return out, nil
}

// Render draws the polygon, the image plane and the projected polygon
// with dashed projection rays.
func (s ProjectionScene) Render() (*cg.Image, error) {
	proj, err := s.Project()
	if err != nil {
		return nil, err
	}
	c := newCanvas(s.Width, s.Height, cg.White)

	poly := swapAll(s.Polygon)
	c.fillPolygon(cg.Green, poly...)
	c.strokePolygon(cg.Black, poly...)

	c.text("image plane", s.ImagePlane, 290, cg.Black, label.Center)
	c.line(cg.V2(s.ImagePlane, 0), cg.V2(s.ImagePlane, 270), cg.Gray)

	onPlane := make([]cg.Vec2, len(proj))
	for i, x := range proj {
		onPlane[i] = cg.V2(s.ImagePlane, x)
	}
	c.strokePolygon(cg.Green, onPlane...)

	for i, p := range poly {
		c.dashed(p, onPlane[i], cg.Gray)
	}
	if s.Mode == Perspective {
		eye := s.Eye.Swap()
		for _, p := range onPlane {
			c.dashed(eye, p, cg.Gray)
		}
		c.dot(eye, 4, cg.Black)
		c.text("eye", eye.X+12, eye.Y+4, cg.Black, label.Left)
	}

	c.axes("X", "Z")
	return c.done()
}
