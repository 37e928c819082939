// Package camera implements a pinhole camera that projects a 2D world
// onto a 1D image line.
//
// World points are [x, z] pairs stored in cg.Vec2 as (X, Y). The camera
// looks from its eye towards a look-at point; in camera space it looks
// down the negative z axis, as OpenGL does. Three matrices are derived
// from the parameters and kept in sync by every mutator:
//
//   - View transforms world space into camera space
//   - InverseView transforms camera space back into world space
//   - Projection maps camera space to homogeneous clip space
//
// A projected point's x lies in [-1, 1] when the point is inside the
// field of view, and its second component is the normalized depth,
// -1 on the near plane and +1 on the far plane.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/cg"
)

var (
	// ErrDegenerateCamera is returned when the eye coincides with the
	// look-at point, so there is no view direction.
	ErrDegenerateCamera = errors.New("camera: eye coincides with look-at point")

	// ErrInvalidPerspective is returned for a field of view outside
	// (0, π) or clip planes that do not satisfy 0 < near < far.
	ErrInvalidPerspective = errors.New("camera: invalid perspective parameters")

	// ErrFocalPlane is returned when projecting a point that lies on the
	// plane through the eye, where the homogeneous w is zero.
	ErrFocalPlane = errors.New("camera: point lies on the focal plane")
)

// Default camera parameters.
const (
	DefaultFovy = 30.0 / 180.0 * math.Pi
	DefaultNear = 150.0
	DefaultFar  = 500.0
)

var (
	// DefaultEye is the initial eye position.
	DefaultEye = cg.V2(150, 10)
	// DefaultTarget is the initial look-at point.
	DefaultTarget = cg.V2(150, 450)
)

// Camera is a 2D pinhole camera. The zero value is not usable; create
// cameras with New. Camera is a plain value: copying it yields an
// independent camera.
type Camera struct {
	eye    cg.Vec2
	target cg.Vec2
	fovy   float64
	near   float64
	far    float64

	view    cg.Mat3
	inverse cg.Mat3
	proj    cg.Mat3
}

// Option configures a Camera during creation.
type Option func(*params)

type params struct {
	eye, target     cg.Vec2
	fovy, near, far float64
}

func defaultParams() params {
	return params{
		eye:    DefaultEye,
		target: DefaultTarget,
		fovy:   DefaultFovy,
		near:   DefaultNear,
		far:    DefaultFar,
	}
}

// WithEye sets the initial eye position.
func WithEye(eye cg.Vec2) Option {
	return func(p *params) { p.eye = eye }
}

// WithLookAt sets the initial look-at point.
func WithLookAt(target cg.Vec2) Option {
	return func(p *params) { p.target = target }
}

// WithFovy sets the vertical field of view in radians.
func WithFovy(fovy float64) Option {
	return func(p *params) { p.fovy = fovy }
}

// WithClipPlanes sets the near and far clip distances.
func WithClipPlanes(near, far float64) Option {
	return func(p *params) {
		p.near = near
		p.far = far
	}
}

// New creates a camera with the default parameters, modified by opts.
//
// Example:
//
//	cam, err := camera.New(camera.WithEye(cg.V2(150, 10)))
//	if err != nil {
//	    return err
//	}
//	ndc, err := cam.ProjectPoint(cg.V2(100, 400))
func New(opts ...Option) (*Camera, error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	c := &Camera{}
	if err := c.apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

// Eye returns the eye position.
func (c *Camera) Eye() cg.Vec2 { return c.eye }

// Target returns the look-at point.
func (c *Camera) Target() cg.Vec2 { return c.target }

// Fovy returns the field of view in radians.
func (c *Camera) Fovy() float64 { return c.fovy }

// Near returns the near clip distance.
func (c *Camera) Near() float64 { return c.near }

// Far returns the far clip distance.
func (c *Camera) Far() float64 { return c.far }

// View returns the world-to-camera matrix.
func (c *Camera) View() cg.Mat3 { return c.view }

// InverseView returns the camera-to-world matrix.
func (c *Camera) InverseView() cg.Mat3 { return c.inverse }

// Projection returns the camera-to-clip matrix.
func (c *Camera) Projection() cg.Mat3 { return c.proj }

// LookAt points the camera at target. On error the camera is unchanged.
func (c *Camera) LookAt(target cg.Vec2) error {
	p := c.params()
	p.target = target
	return c.apply(p)
}

// SetEye moves the eye to eye. On error the camera is unchanged.
func (c *Camera) SetEye(eye cg.Vec2) error {
	p := c.params()
	p.eye = eye
	return c.apply(p)
}

// SetPerspective replaces the field of view and clip planes. On error
// the camera is unchanged.
func (c *Camera) SetPerspective(fovy, near, far float64) error {
	p := c.params()
	p.fovy, p.near, p.far = fovy, near, far
	return c.apply(p)
}

func (c *Camera) params() params {
	return params{eye: c.eye, target: c.target, fovy: c.fovy, near: c.near, far: c.far}
}

// apply validates p, derives all matrices and only then commits them.
func (c *Camera) apply(p params) error {
	if !(p.fovy > 0 && p.fovy < math.Pi) || !(p.near > 0 && p.near < p.far) || math.IsInf(p.far, 0) {
		return fmt.Errorf("%w: fovy=%v near=%v far=%v", ErrInvalidPerspective, p.fovy, p.near, p.far)
	}
	view, err := ViewMatrix(p.eye, p.target)
	if err != nil {
		return err
	}
	inverse, err := view.Invert()
	if err != nil {
		// An orthonormal basis with translation is always invertible.
		return fmt.Errorf("camera: invert view: %w", err)
	}

	c.eye, c.target = p.eye, p.target
	c.fovy, c.near, c.far = p.fovy, p.near, p.far
	c.view = view
	c.inverse = inverse
	c.proj = Perspective(p.fovy, p.near, p.far)

	cg.Logger().Debug("camera: matrices updated",
		"eye", c.eye, "target", c.target, "fovy", c.fovy, "near", c.near, "far", c.far)
	return nil
}

// ViewMatrix returns the world-to-camera transform for a camera at eye
// looking at target.
//
// The basis is w = normalize(eye - target), the negated view direction,
// and v, the camera's x axis, obtained by crossing u = normalize((1,0,0)
// × (w,0)) with (w,0). A view direction parallel to the world x axis
// leaves u undefined; (0,0,1) is used in that case.
func ViewMatrix(eye, target cg.Vec2) (cg.Mat3, error) {
	w, err := eye.Sub(target).Unit()
	if err != nil {
		return cg.Mat3{}, fmt.Errorf("%w: %w", ErrDegenerateCamera, err)
	}

	u, err := cg.V3(1, 0, 0).Cross(cg.V3(w.X, w.Y, 0)).Unit()
	if err != nil {
		u = cg.V3(0, 0, 1)
	}
	v := u.Cross(cg.V3(w.X, w.Y, 0)).XY()

	return cg.Mat3FromRows(
		cg.V3(v.X, v.Y, -v.Dot(eye)),
		cg.V3(w.X, w.Y, -w.Dot(eye)),
		cg.V3(0, 0, 1),
	), nil
}

// Perspective returns the camera-to-clip matrix for a field of view
// fovy and clip planes near and far. Clip w equals the negated camera z,
// and the normalized depth maps [-near, -far] onto [-1, 1].
func Perspective(fovy, near, far float64) cg.Mat3 {
	t := near * math.Tan(fovy/2)
	return cg.Mat3FromRows(
		cg.V3(near/t, 0, 0),
		cg.V3(0, -(far+near)/(far-near), -2*far*near/(far-near)),
		cg.V3(0, -1, 0),
	)
}

// ToCamera transforms a world point into camera space.
func (c *Camera) ToCamera(p cg.Vec2) cg.Vec2 {
	return c.view.MulVec(p.Homogeneous()).XY()
}

// ToWorld transforms a camera-space point back into world space.
func (c *Camera) ToWorld(p cg.Vec2) cg.Vec2 {
	return c.inverse.MulVec(p.Homogeneous()).XY()
}

// ProjectPoint maps a world point to normalized device coordinates:
// X is the image coordinate and Y the normalized depth. Points on the
// focal plane report ErrFocalPlane.
func (c *Camera) ProjectPoint(p cg.Vec2) (cg.Vec2, error) {
	cam := c.view.MulVec(p.Homogeneous())
	clip := c.proj.MulVec(cam)
	ndc, err := clip.Dehomogenize()
	if err != nil {
		return cg.Vec2{}, fmt.Errorf("%w: %w", ErrFocalPlane, err)
	}
	return ndc, nil
}

// Frustum is the visible region of the camera between the clip planes,
// in world coordinates. Right corners lie on the camera's +x side.
type Frustum struct {
	NearRight, NearLeft cg.Vec2
	FarRight, FarLeft   cg.Vec2
}

// Frustum returns the world-space corners of the view trapezoid. The
// half-width at distance d is d·sin(fovy/2).
func (c *Camera) Frustum() Frustum {
	s := math.Sin(c.fovy / 2)
	corner := func(x, z float64) cg.Vec2 {
		return c.inverse.MulVec(cg.V3(x, z, 1)).XY()
	}
	return Frustum{
		NearRight: corner(c.near*s, -c.near),
		NearLeft:  corner(-c.near*s, -c.near),
		FarRight:  corner(c.far*s, -c.far),
		FarLeft:   corner(-c.far*s, -c.far),
	}
}

// Polygon returns the frustum corners in drawing order.
func (f Frustum) Polygon() []cg.Vec2 {
	return []cg.Vec2{f.NearRight, f.NearLeft, f.FarLeft, f.FarRight}
}

// Contains reports whether p lies inside the frustum or on its boundary.
func (f Frustum) Contains(p cg.Vec2) bool {
	poly := f.Polygon()
	var pos, neg bool
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		cross := b.Sub(a).Cross(p.Sub(a))
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// WorldPointOnScreen returns the world point on the near plane for the
// image coordinate s in [-1, 1], interpolating between the near corners.
// The mapping is linear and only approximately inverts ProjectPoint:
// projecting the result gives s·cos(fovy/2).
func (c *Camera) WorldPointOnScreen(s float64) cg.Vec2 {
	f := c.Frustum()
	alpha := s/2 + 0.5
	return f.NearLeft.Lerp(f.NearRight, alpha)
}
