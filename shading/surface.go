package shading

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/cg"
)

// ErrTooFewSegments is returned when a surface is requested with fewer
// than one segment.
var ErrTooFewSegments = errors.New("shading: surface needs at least one segment")

// Defaults of the demo lighting setup, in world [x, z] coordinates.
var (
	DefaultEye    = cg.V2(40, 20)
	DefaultLight  = cg.V2(20, 580)
	DefaultAlbedo = cg.V3(0, 1, 0)
)

// Surface is an open polyline. Segment i runs from vertex i to vertex i+1.
type Surface []cg.Vec2

// SineSurface samples half a sine period into n segments. Vertex i is
// (base - amplitude·sin(πi/n), z) with z interpolated from z0 to z1 and
// rounded to a whole pixel.
func SineSurface(n int, amplitude, base, z0, z1 float64) (Surface, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSegments, n)
	}
	s := make(Surface, n+1)
	for i := range s {
		alpha := float64(i) / float64(n)
		s[i] = cg.V2(
			base-amplitude*math.Sin(alpha*math.Pi),
			math.Round((1-alpha)*z0+alpha*z1),
		)
	}
	return s, nil
}

// Segments returns the number of segments.
func (s Surface) Segments() int {
	return max(len(s)-1, 0)
}

// Midpoint returns the centre of segment i.
func (s Surface) Midpoint(i int) cg.Vec2 {
	return s[i].Lerp(s[i+1], 0.5)
}

// SegmentNormals returns the unit normal of every segment.
func (s Surface) SegmentNormals() []cg.Vec2 {
	out := make([]cg.Vec2, s.Segments())
	for i := range out {
		out[i] = SegmentNormal(s[i], s[i+1])
	}
	return out
}

// VertexNormals returns one unit normal per vertex: the average of the
// adjacent segment normals weighted by segment length. The end vertices
// take the normal of their only segment.
func (s Surface) VertexNormals() []cg.Vec2 {
	out := make([]cg.Vec2, len(s))
	for i := 0; i < s.Segments(); i++ {
		w := s[i].Distance(s[i+1])
		n := SegmentNormal(s[i], s[i+1]).Mul(w)
		out[i] = out[i].Add(n)
		out[i+1] = out[i+1].Add(n)
	}
	for i, n := range out {
		out[i] = n.Normalize()
	}
	return out
}

// FlatShade lights every segment once, at its midpoint with the segment
// normal, and returns one colour per segment.
func FlatShade(s Surface, eye, light cg.Vec2, albedo cg.Vec3, m Material) []cg.Vec3 {
	normals := s.SegmentNormals()
	out := make([]cg.Vec3, len(normals))
	for i, n := range normals {
		out[i] = Phong(s.Midpoint(i), n, eye, light, albedo, m).Color
	}
	return out
}

// GouraudShade lights every vertex with its interpolated normal and
// returns one colour per vertex. Segment i is drawn as a gradient from
// colour i to colour i+1.
func GouraudShade(s Surface, eye, light cg.Vec2, albedo cg.Vec3, m Material) []cg.Vec3 {
	normals := s.VertexNormals()
	out := make([]cg.Vec3, len(s))
	for i, p := range s {
		out[i] = Phong(p, normals[i], eye, light, albedo, m).Color
	}
	return out
}
