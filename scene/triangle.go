package scene

import (
	"fmt"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/camera"
	"github.com/gogpu/cg/internal/label"
)

// TriangleMode selects which midpoint triangle TriangleScene adds to the
// projected triangle.
type TriangleMode int

const (
	// Projected shows only the projected triangle.
	Projected TriangleMode = iota
	// EuclideanMidpoints adds the midpoints of the projected vertices.
	EuclideanMidpoints
	// HomogeneousMidpoints adds the midpoints taken before the divide.
	HomogeneousMidpoints
)

func (m TriangleMode) String() string {
	switch m {
	case Projected:
		return "a)"
	case EuclideanMidpoints:
		return "b)"
	case HomogeneousMidpoints:
		return "c)"
	}
	return fmt.Sprintf("TriangleMode(%d)", int(m))
}

// TriangleScene projects a camera-space triangle with a fixed perspective
// matrix and draws it in normalized device coordinates.
type TriangleScene struct {
	Width, Height int
	Mode          TriangleMode
	Projection    cg.Mat4
	Triangle      camera.Triangle
}

// DefaultTriangleScene returns the example triangle on a 300×300 canvas.
func DefaultTriangleScene(mode TriangleMode) TriangleScene {
	return TriangleScene{
		Width:      300,
		Height:     300,
		Mode:       mode,
		Projection: camera.ExampleProjection,
		Triangle:   camera.ExampleTriangle,
	}
}

// Triangles returns the projected triangle and, unless the mode is
// Projected, the midpoint triangle.
func (s TriangleScene) Triangles() (outer camera.Triangle, inner *camera.Triangle, err error) {
	outer, err = camera.ProjectTriangle(s.Projection, s.Triangle)
	if err != nil {
		return outer, nil, err
	}
	switch s.Mode {
	case Projected:
	case EuclideanMidpoints:
		mid := camera.Midpoints(outer)
		inner = &mid
	case HomogeneousMidpoints:
		mid, err := camera.HomogeneousMidpoints(s.Projection, s.Triangle)
		if err != nil {
			return outer, nil, err
		}
		inner = &mid
	default:
		return outer, nil, fmt.Errorf("scene: unknown triangle mode %v", s.Mode)
	}
	return outer, inner, nil
}

// Render draws the labelled projected triangle and the midpoint triangle
// filled in gray.
func (s TriangleScene) Render() (*cg.Image, error) {
	outer, inner, err := s.Triangles()
	if err != nil {
		return nil, err
	}
	c := newCanvas(s.Width, s.Height, cg.White)
	c.text(s.Mode.String(), 10, 16, cg.Black, label.Center)

	pts := s.toCanvas(outer)
	c.strokePolygon(cg.Black, pts[:]...)
	for i, v := range []struct {
		name string
		col  cg.Color
	}{
		{"A'", cg.Red},
		{"B'", cg.Green},
		{"C'", cg.Blue},
	} {
		c.dot(pts[i], 8, v.col)
		c.text(v.name, pts[i].X, pts[i].Y+4, cg.White, label.Center)
	}

	if inner != nil {
		in := s.toCanvas(*inner)
		c.strokePolygon(cg.Black, in[:]...)
		c.fillPolygon(cg.Gray, in[:]...)
	}

	c.axes("-Y", "X")
	return c.done()
}

func (s TriangleScene) toCanvas(t camera.Triangle) [3]cg.Vec2 {
	var out [3]cg.Vec2
	for i, p := range t {
		out[i] = camera.ToCanvas(p, float64(s.Width), float64(s.Height))
	}
	return out
}
