package scene

import (
	"fmt"
	"math"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/internal/label"
)

// TransformMode selects the transformation sequence TransformScene shows.
type TransformMode int

const (
	// Basic shows a rotation, a uniform scale and a shear of the input.
	Basic TransformMode = iota
	// ThreeShear builds a rotation out of three successive shears.
	ThreeShear
	// Composite applies two affine maps in turn and then their
	// composition in one step.
	Composite
)

func (m TransformMode) String() string {
	switch m {
	case Basic:
		return "basic"
	case ThreeShear:
		return "three-shear"
	case Composite:
		return "composite"
	}
	return fmt.Sprintf("TransformMode(%d)", int(m))
}

// viewport is the edge length of one panel.
const viewport = 150

// Panel is one labelled triangle of a TransformScene, in unit viewport
// coordinates.
type Panel struct {
	Label    string
	Triangle [3]cg.Vec2
}

// TransformScene draws an input triangle next to three transformed
// versions of it, each in its own viewport.
type TransformScene struct {
	Mode TransformMode
	// Angle is the rotation angle ThreeShear decomposes.
	Angle float64
}

// DefaultTransformScene returns the scene for mode with a rotation
// angle of 0.2.
func DefaultTransformScene(mode TransformMode) TransformScene {
	return TransformScene{Mode: mode, Angle: 0.2}
}

func applyAll(m cg.Affine, t [3]cg.Vec2) [3]cg.Vec2 {
	return [3]cg.Vec2{m.Apply(t[0]), m.Apply(t[1]), m.Apply(t[2])}
}

// Panels returns the four panels for the scene's mode.
func (s TransformScene) Panels() ([4]Panel, error) {
	switch s.Mode {
	case Basic:
		in := [3]cg.Vec2{cg.V2(0.2, 0.2), cg.V2(0.8, 0.2), cg.V2(0.2, 0.8)}
		return [4]Panel{
			{"input triangle", in},
			{"rotated triangle", applyAll(cg.Rotate(0.2), in)},
			{"scaled triangle", applyAll(cg.UniformScale(0.5), in)},
			{"sheared triangle", applyAll(cg.ShearX(0.4), in)},
		}, nil

	case ThreeShear:
		in := [3]cg.Vec2{cg.V2(0.2, 0.2), cg.V2(0.8, 0.2), cg.V2(0.2, 0.8)}
		outer := cg.ShearX(-math.Tan(s.Angle / 2))
		first := applyAll(outer, in)
		second := applyAll(cg.ShearY(math.Sin(s.Angle)), first)
		return [4]Panel{
			{"input triangle", in},
			{"1. shearing", first},
			{"2. shearing", second},
			{"3. shearing", applyAll(outer, second)},
		}, nil

	case Composite:
		in := [3]cg.Vec2{cg.V2(0.05, 0.2), cg.V2(0.65, 0.2), cg.V2(0.05, 0.8)}
		t1 := cg.Rotate(math.Pi / 12).Then(cg.Translate(0.3, 0))
		t2 := cg.Rotate(-math.Pi / 8).Then(cg.Translate(0, 0.1))
		once := applyAll(t1, in)
		return [4]Panel{
			{"input triangle", in},
			{"1. transf.", once},
			{"1. then 2. transf.", applyAll(t2, once)},
			{"composite transf.", applyAll(t1.Then(t2), in)},
		}, nil
	}
	return [4]Panel{}, fmt.Errorf("scene: unknown transform mode %v", s.Mode)
}

// Render draws the four panels side by side on a 600×150 canvas.
func (s TransformScene) Render() (*cg.Image, error) {
	panels, err := s.Panels()
	if err != nil {
		return nil, err
	}
	c := newCanvas(4*viewport, viewport, cg.White)
	for i, p := range panels {
		x0 := float64(i * viewport)
		c.strokePolygon(cg.Black,
			cg.V2(x0, 0), cg.V2(x0+viewport-1, 0),
			cg.V2(x0+viewport-1, viewport-1), cg.V2(x0, viewport-1))

		var pts [3]cg.Vec2
		for j, v := range p.Triangle {
			pts[j] = cg.V2(viewport*v.X+x0, viewport*v.Y)
		}
		c.fillPolygon(cg.Black, pts[:]...)
		c.text(p.Label, x0+viewport/2, 140, cg.Black, label.Center)
	}
	return c.done()
}
