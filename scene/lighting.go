package scene

import (
	"fmt"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/internal/label"
	"github.com/gogpu/cg/shading"
)

// LightingMode selects what LightingScene shows.
type LightingMode int

const (
	// Vectors lights sample points on a flat surface and draws the
	// lighting vectors at one chosen point.
	Vectors LightingMode = iota
	// Flat lights each segment of a curved surface once.
	Flat
	// Gouraud lights the vertices and interpolates along each segment.
	Gouraud
)

func (m LightingMode) String() string {
	switch m {
	case Vectors:
		return "vectors"
	case Flat:
		return "flat"
	case Gouraud:
		return "gouraud"
	}
	return fmt.Sprintf("LightingMode(%d)", int(m))
}

const (
	// surfaceX is the world x of the undisturbed surface.
	surfaceX = 270
	// vectorScale is the drawn length of a unit lighting vector.
	vectorScale = 100
)

// LightingScene shows Phong lighting of a 2D surface. World points
// [x, z] are drawn at canvas (z, x).
type LightingScene struct {
	Width, Height int
	Mode          LightingMode
	Eye, Light    cg.Vec2
	Albedo        cg.Vec3
	Material      shading.Material

	// Samples is the number of lit points in Vectors mode and Alpha the
	// position of the inspected point along the surface, in [0, 1].
	Samples int
	Alpha   float64

	// Segments and Amplitude shape the sine surface of Flat and Gouraud.
	Segments  int
	Amplitude float64
}

// DefaultLightingScene returns the default lighting setup on a 600×300
// canvas.
func DefaultLightingScene(mode LightingMode) LightingScene {
	return LightingScene{
		Width:     600,
		Height:    300,
		Mode:      mode,
		Eye:       shading.DefaultEye,
		Light:     shading.DefaultLight,
		Albedo:    shading.DefaultAlbedo,
		Material:  shading.DefaultMaterial,
		Samples:   5,
		Alpha:     0.25,
		Segments:  5,
		Amplitude: 50,
	}
}

// HandlePointer moves the inspected point to the pressed canvas column.
func (s LightingScene) HandlePointer(e PointerEvent) LightingScene {
	s.Alpha = min(max(e.X/float64(s.Width), 0), 1)
	return s
}

// HandleSamples sets the number of lit sample points. Two are needed to
// span the surface.
func (s LightingScene) HandleSamples(n int) (LightingScene, error) {
	if n < 2 {
		return s, fmt.Errorf("%w: %d samples", ErrInvalidSamples, n)
	}
	s.Samples = n
	return s, nil
}

// HandleSegments sets the number of surface segments.
func (s LightingScene) HandleSegments(n int) (LightingScene, error) {
	if n < 1 {
		return s, fmt.Errorf("%w: %d", shading.ErrTooFewSegments, n)
	}
	s.Segments = n
	return s, nil
}

// HandleAmplitude sets the height of the sine surface.
func (s LightingScene) HandleAmplitude(a float64) LightingScene {
	s.Amplitude = a
	return s
}

// Surface returns the sine surface of Flat and Gouraud mode.
func (s LightingScene) Surface() (shading.Surface, error) {
	return shading.SineSurface(s.Segments, s.Amplitude, surfaceX, 0, float64(s.Width))
}

// Render draws the eye, the light and the lit surface.
func (s LightingScene) Render() (*cg.Image, error) {
	c := newCanvas(s.Width, s.Height, cg.White)

	eye, light := s.Eye.Swap(), s.Light.Swap()
	c.dot(eye, 4, cg.Black)
	c.text("eye", eye.X, eye.Y+20, cg.Black, label.Center)
	c.dot(light, 4, cg.Black)
	c.text("light", light.X, light.Y+20, cg.Black, label.Center)

	var err error
	switch s.Mode {
	case Vectors:
		err = s.drawVectors(c)
	case Flat, Gouraud:
		err = s.drawSurface(c)
	default:
		err = fmt.Errorf("scene: unknown lighting mode %v", s.Mode)
	}
	if err != nil {
		return nil, err
	}
	c.text("surface", 50, surfaceX+20, cg.Black, label.Center)
	return c.done()
}

func (s LightingScene) drawVectors(c *canvas) error {
	if s.Samples < 2 {
		return fmt.Errorf("%w: %d samples", ErrInvalidSamples, s.Samples)
	}
	start, end := cg.V2(surfaceX, 0), cg.V2(surfaceX, float64(s.Width))
	normal := cg.V2(-1, 0)
	c.paint(c.lineMask(start.Swap(), end.Swap(), 4), cg.FromFloat(0.5, 0.5, 0.5))

	for i := range s.Samples {
		p := start.Lerp(end, float64(i)/float64(s.Samples-1))
		lit := shading.Phong(p, normal, s.Eye, s.Light, s.Albedo, s.Material)
		c.dot(p.Swap(), 4, cg.FromVec3(lit.Color))
	}

	p := start.Lerp(end, s.Alpha)
	lit := shading.Phong(p, normal, s.Eye, s.Light, s.Albedo, s.Material)
	for _, v := range []struct {
		name string
		dir  cg.Vec2
	}{
		{"n", lit.Normal},
		{"v", lit.View},
		{"l", lit.Light},
		{"r", lit.Reflect},
	} {
		c.labeledArrow(p.Swap(), p.Add(v.dir.Mul(vectorScale)).Swap(), 5, cg.Black, v.name)
	}
	at := p.Swap()
	c.dot(at, 6, cg.FromVec3(lit.Color))
	c.text("p", at.X, at.Y+20, cg.Black, label.Center)
	return nil
}

func (s LightingScene) drawSurface(c *canvas) error {
	surf, err := s.Surface()
	if err != nil {
		return err
	}
	px := swapAll(surf)

	if s.Mode == Flat {
		for i, col := range shading.FlatShade(surf, s.Eye, s.Light, s.Albedo, s.Material) {
			c.paint(c.lineMask(px[i], px[i+1], 8), cg.FromVec3(col))
		}
	} else {
		cols := shading.GouraudShade(surf, s.Eye, s.Light, s.Albedo, s.Material)
		for i := range surf.Segments() {
			a, b := px[i], px[i+1]
			from, to := cg.FromVec3(cols[i]), cg.FromVec3(cols[i+1])
			c.shade(c.lineMask(a, b, 8), gradient(a, b, from, to))
		}
	}

	for _, p := range px[1 : len(px)-1] {
		c.line(cg.V2(p.X, p.Y+4), cg.V2(p.X, p.Y+14), cg.Black)
	}
	return nil
}

// gradient returns a linear gradient from colour from at a to colour to
// at b, constant beyond either end.
func gradient(a, b cg.Vec2, from, to cg.Color) func(x, y int) cg.Color {
	d := b.Sub(a)
	l2 := d.LengthSq()
	return func(x, y int) cg.Color {
		if l2 == 0 {
			return from
		}
		p := cg.V2(float64(x)+0.5, float64(y)+0.5)
		return from.Lerp(to, p.Sub(a).Dot(d)/l2)
	}
}
