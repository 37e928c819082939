// Package shading evaluates the Phong lighting model on 2D surfaces.
//
// Points, normals, the eye and the light are 2D world vectors. Colours
// are linear RGB triples in [0, 1] held in cg.Vec3; convert them with
// cg.FromVec3 before writing pixels.
package shading

import (
	"math"

	"github.com/gogpu/cg"
)

// Material holds the reflection coefficients of a surface. Ambient and
// Diffuse scale the albedo; Specular is the highlight colour.
type Material struct {
	Ambient   float64
	Diffuse   float64
	Specular  cg.Vec3
	Shininess float64
}

// DefaultMaterial is a matte surface with a soft white highlight.
var DefaultMaterial = Material{
	Ambient:   0.1,
	Diffuse:   0.5,
	Specular:  cg.V3(0.4, 0.4, 0.4),
	Shininess: 30,
}

// Sample is one evaluation of the lighting model. The unit vectors all
// point away from the surface point.
type Sample struct {
	Color   cg.Vec3
	Normal  cg.Vec2
	View    cg.Vec2
	Light   cg.Vec2
	Reflect cg.Vec2

	Ambient, Diffuse, Specular cg.Vec3
}

// Phong lights point with normal n as seen from eye under a point light.
//
// The diffuse term vanishes when the light or the eye is behind the
// surface. The specular term uses max(v·r, 0) so a reflection pointing
// away from the eye contributes nothing.
func Phong(point, n, eye, light cg.Vec2, albedo cg.Vec3, m Material) Sample {
	v := eye.Sub(point).Normalize()
	l := light.Sub(point).Normalize()
	r := n.Mul(2 * n.Dot(l)).Sub(l).Normalize()

	s := Sample{Normal: n, View: v, Light: l, Reflect: r}
	s.Ambient = albedo.Mul(m.Ambient)

	nl := n.Dot(l)
	if nl < 0 || n.Dot(v) < 0 {
		nl = 0
	}
	s.Diffuse = albedo.Mul(m.Diffuse * nl)

	phi := max(v.Dot(r), 0)
	s.Specular = m.Specular.Mul(math.Pow(phi, m.Shininess))

	s.Color = s.Ambient.Add(s.Diffuse).Add(s.Specular)
	return s
}

// SegmentNormal returns the unit normal (-dy, dx) of the segment a→b, or
// the zero vector if a == b.
func SegmentNormal(a, b cg.Vec2) cg.Vec2 {
	return b.Sub(a).Perp().Normalize()
}

// PolygonNormals returns a unit normal per vertex of the closed polygon
// poly: the normalized sum of the unit normals of the two edges meeting
// at the vertex. Degenerate edges are skipped.
func PolygonNormals(poly []cg.Vec2) []cg.Vec2 {
	normals := make([]cg.Vec2, len(poly))
	for i := range poly {
		j := (i + 1) % len(poly)
		n := SegmentNormal(poly[i], poly[j])
		normals[i] = normals[i].Add(n)
		normals[j] = normals[j].Add(n)
	}
	for i, n := range normals {
		normals[i] = n.Normalize()
	}
	return normals
}
