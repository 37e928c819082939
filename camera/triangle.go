package camera

import (
	"fmt"

	"github.com/gogpu/cg"
)

// Triangle is a triangle in 3D camera space or in normalized device
// coordinates, with vertices A, B and C.
type Triangle [3]cg.Vec3

// ExampleProjection is a perspective matrix mapping (x, y, z, 1) to
// (x, y, -2z-3, -z), stored column-major.
var ExampleProjection = cg.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, -2, -1,
	0, 0, -3, 0,
}

// ExampleTriangle is a camera-space triangle in front of the eye.
var ExampleTriangle = Triangle{
	cg.V3(0, 0, -1),
	cg.V3(0, 2, -3),
	cg.V3(-2, -1, -3),
}

// clip transforms every vertex of t into homogeneous clip space.
func clip(m cg.Mat4, t Triangle) [3]cg.Vec4 {
	var out [3]cg.Vec4
	for i, v := range t {
		out[i] = m.MulVec(cg.Point4(v))
	}
	return out
}

func dehomogenize(c [3]cg.Vec4) (Triangle, error) {
	var out Triangle
	for i, v := range c {
		p, err := v.Dehomogenize()
		if err != nil {
			return Triangle{}, fmt.Errorf("camera: vertex %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// ProjectTriangle transforms t by m and divides each vertex by its w.
func ProjectTriangle(m cg.Mat4, t Triangle) (Triangle, error) {
	return dehomogenize(clip(m, t))
}

// Midpoints returns the triangle formed by the edge midpoints AB, BC and
// CA of t, computed in t's own space.
func Midpoints(t Triangle) Triangle {
	return Triangle{
		t[0].Lerp(t[1], 0.5),
		t[1].Lerp(t[2], 0.5),
		t[2].Lerp(t[0], 0.5),
	}
}

// HomogeneousMidpoints projects t by m and returns the midpoint triangle
// with midpoints taken in clip space before the perspective divide. The
// result equals the projection of the camera-space midpoints, which the
// midpoints of the projected vertices are not.
func HomogeneousMidpoints(m cg.Mat4, t Triangle) (Triangle, error) {
	c := clip(m, t)
	return dehomogenize([3]cg.Vec4{
		c[0].Lerp(c[1], 0.5),
		c[1].Lerp(c[2], 0.5),
		c[2].Lerp(c[0], 0.5),
	})
}

// ToCanvas maps a normalized device point to a w×h canvas. Both axes are
// flipped, so +x points left and +y points up.
func ToCanvas(p cg.Vec3, w, h float64) cg.Vec2 {
	return cg.V2(w*(0.5-p.X/2), h*(0.5-p.Y/2))
}
