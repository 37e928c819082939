package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/cg"
)

const eps = 1e-9

func mustNew(t *testing.T, opts ...Option) *Camera {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNewDefaults(t *testing.T) {
	c := mustNew(t)
	if c.Eye() != cg.V2(150, 10) || c.Target() != cg.V2(150, 450) {
		t.Errorf("eye = %v, target = %v", c.Eye(), c.Target())
	}
	if math.Abs(c.Fovy()-math.Pi/6) > eps || c.Near() != 150 || c.Far() != 500 {
		t.Errorf("fovy = %v, near = %v, far = %v", c.Fovy(), c.Near(), c.Far())
	}

	want := cg.Mat3FromRows(cg.V3(-1, 0, 150), cg.V3(0, -1, 10), cg.V3(0, 0, 1))
	if !c.View().Approx(want, eps) {
		t.Errorf("View() = %v, want %v", c.View(), want)
	}
	if got := c.View().Mul(c.InverseView()); !got.Approx(cg.Identity3(), eps) {
		t.Errorf("View * InverseView = %v, want identity", got)
	}
}

func TestNewOptions(t *testing.T) {
	c := mustNew(t,
		WithEye(cg.V2(0, 0)),
		WithLookAt(cg.V2(0, 100)),
		WithFovy(math.Pi/2),
		WithClipPlanes(10, 100),
	)
	if c.Eye() != cg.V2(0, 0) || c.Target() != cg.V2(0, 100) || c.Near() != 10 || c.Far() != 100 {
		t.Errorf("camera = %+v", c)
	}

	if _, err := New(WithEye(cg.V2(5, 5)), WithLookAt(cg.V2(5, 5))); !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("New(eye == target) error = %v, want ErrDegenerateCamera", err)
	}
	if _, err := New(WithClipPlanes(10, 10)); !errors.Is(err, ErrInvalidPerspective) {
		t.Errorf("New(near == far) error = %v, want ErrInvalidPerspective", err)
	}
}

func TestProjectTargetOnAxis(t *testing.T) {
	c := mustNew(t)
	if err := c.SetEye(cg.V2(150, 10)); err != nil {
		t.Fatalf("SetEye() error = %v", err)
	}
	p, err := c.ProjectPoint(cg.V2(150, 450))
	if err != nil {
		t.Fatalf("ProjectPoint() error = %v", err)
	}
	if math.Abs(p.X) > eps {
		t.Errorf("ProjectPoint(target).X = %v, want 0", p.X)
	}
}

func TestProjectPoint(t *testing.T) {
	c := mustNew(t)
	edge := c.Near() * math.Tan(c.Fovy()/2)

	tests := []struct {
		name string
		p    cg.Vec2
		want cg.Vec2
	}{
		{"near plane centre", cg.V2(150, 160), cg.V2(0, -1)},
		{"far plane centre", cg.V2(150, 510), cg.V2(0, 1)},
		// Camera x points towards world -x for this camera.
		{"near plane edge", cg.V2(150-edge, 160), cg.V2(1, -1)},
		{"near plane other edge", cg.V2(150+edge, 160), cg.V2(-1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ProjectPoint(tt.p)
			if err != nil {
				t.Fatalf("ProjectPoint() error = %v", err)
			}
			if !got.Approx(tt.want, eps) {
				t.Errorf("ProjectPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestProjectPointFocalPlane(t *testing.T) {
	c := mustNew(t)
	_, err := c.ProjectPoint(cg.V2(100, 10))
	if !errors.Is(err, ErrFocalPlane) {
		t.Errorf("ProjectPoint() error = %v, want ErrFocalPlane", err)
	}
	if !errors.Is(err, cg.ErrZeroW) {
		t.Errorf("ProjectPoint() error = %v, want it to wrap cg.ErrZeroW", err)
	}
}

func TestViewMatrixBasis(t *testing.T) {
	pairs := [][2]cg.Vec2{
		{cg.V2(150, 10), cg.V2(150, 450)},
		{cg.V2(0, 0), cg.V2(10, 0)},  // view along world x
		{cg.V2(0, 0), cg.V2(-10, 0)}, // and against it
		{cg.V2(300, 200), cg.V2(20, 40)},
		{cg.V2(-5, 7), cg.V2(3, 100)},
	}

	for _, pr := range pairs {
		eye, target := pr[0], pr[1]
		view, err := ViewMatrix(eye, target)
		if err != nil {
			t.Fatalf("ViewMatrix(%v, %v) error = %v", eye, target, err)
		}
		if _, err := view.Invert(); err != nil {
			t.Errorf("ViewMatrix(%v, %v) is singular", eye, target)
		}

		// The target sits on the negative camera z axis.
		got := view.MulVec(target.Homogeneous()).XY()
		want := cg.V2(0, -eye.Distance(target))
		if !got.Approx(want, 1e-9) {
			t.Errorf("view(target) = %v, want %v", got, want)
		}
		// The eye is the camera origin.
		if o := view.MulVec(eye.Homogeneous()).XY(); !o.Approx(cg.Vec2{}, 1e-9) {
			t.Errorf("view(eye) = %v, want origin", o)
		}
		// Rows 0 and 1 are orthonormal.
		v, w := view.Row(0).XY(), view.Row(1).XY()
		if math.Abs(v.Length()-1) > eps || math.Abs(w.Length()-1) > eps || math.Abs(v.Dot(w)) > eps {
			t.Errorf("basis v = %v, w = %v is not orthonormal", v, w)
		}
	}

	if _, err := ViewMatrix(cg.V2(1, 1), cg.V2(1, 1)); !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("ViewMatrix(eye == target) error = %v", err)
	}
}

func TestPerspectiveLayout(t *testing.T) {
	fovy, n, f := math.Pi/6, 150.0, 500.0
	m := Perspective(fovy, n, f)

	if got := m.At(0, 0); math.Abs(got-1/math.Tan(fovy/2)) > eps {
		t.Errorf("At(0,0) = %v, want 1/tan(fovy/2)", got)
	}
	if m.At(1, 1) != -(f+n)/(f-n) || m.At(1, 2) != -2*f*n/(f-n) {
		t.Errorf("depth row = %v", m.Row(1))
	}
	if m.At(2, 1) != -1 || m.At(2, 2) != 0 {
		t.Errorf("w row = %v, want (0, -1, 0)", m.Row(2))
	}
}

func TestMutatorsRejectDegenerate(t *testing.T) {
	c := mustNew(t)
	before := *c

	if err := c.SetEye(c.Target()); !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("SetEye(target) error = %v, want ErrDegenerateCamera", err)
	}
	if !errors.Is(c.LookAt(c.Eye()), cg.ErrZeroVector) {
		t.Error("LookAt(eye) should wrap cg.ErrZeroVector")
	}

	tests := []struct {
		name            string
		fovy, near, far float64
	}{
		{"zero fovy", 0, 150, 500},
		{"straight angle", math.Pi, 150, 500},
		{"zero near", 0.5, 0, 500},
		{"near beyond far", 0.5, 500, 150},
		{"nan", math.NaN(), 150, 500},
		{"infinite far", 0.5, 150, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.SetPerspective(tt.fovy, tt.near, tt.far); !errors.Is(err, ErrInvalidPerspective) {
				t.Errorf("SetPerspective() error = %v, want ErrInvalidPerspective", err)
			}
		})
	}

	if *c != before {
		t.Errorf("camera changed after rejected updates: %+v, want %+v", *c, before)
	}
}

func TestMutatorsIdempotent(t *testing.T) {
	c := mustNew(t)
	if err := c.SetEye(cg.V2(80, 40)); err != nil {
		t.Fatal(err)
	}
	first := *c
	if err := c.SetEye(cg.V2(80, 40)); err != nil {
		t.Fatal(err)
	}
	if err := c.LookAt(c.Target()); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPerspective(c.Fovy(), c.Near(), c.Far()); err != nil {
		t.Fatal(err)
	}
	if *c != first {
		t.Errorf("repeated updates changed the camera: %+v, want %+v", *c, first)
	}
}

func TestCameraCopyIndependent(t *testing.T) {
	c := mustNew(t)
	cp := *c
	if err := cp.SetEye(cg.V2(10, 10)); err != nil {
		t.Fatal(err)
	}
	if c.Eye() != DefaultEye {
		t.Errorf("original eye = %v after modifying copy", c.Eye())
	}
	if c.View() == cp.View() {
		t.Error("copy shares the view matrix")
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := mustNew(t)
	p := cg.V2(123, 321)
	if got := c.ToWorld(c.ToCamera(p)); !got.Approx(p, 1e-9) {
		t.Errorf("ToWorld(ToCamera(%v)) = %v", p, got)
	}
}

func TestFrustum(t *testing.T) {
	c := mustNew(t)
	f := c.Frustum()
	s := math.Sin(c.Fovy() / 2)

	if !f.NearRight.Approx(cg.V2(150-150*s, 160), eps) || !f.NearLeft.Approx(cg.V2(150+150*s, 160), eps) {
		t.Errorf("near corners = %v, %v", f.NearRight, f.NearLeft)
	}
	if !f.FarRight.Approx(cg.V2(150-500*s, 510), eps) || !f.FarLeft.Approx(cg.V2(150+500*s, 510), eps) {
		t.Errorf("far corners = %v, %v", f.FarRight, f.FarLeft)
	}
	if len(f.Polygon()) != 4 {
		t.Errorf("Polygon() has %d points", len(f.Polygon()))
	}

	tests := []struct {
		p    cg.Vec2
		want bool
	}{
		{cg.V2(150, 300), true},
		{cg.V2(150, 450), true},
		{f.NearLeft, true},
		{cg.V2(150, 100), false},
		{cg.V2(150, 600), false},
		{cg.V2(0, 300), false},
		{cg.V2(300, 300), false},
	}
	for _, tt := range tests {
		if got := f.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestWorldPointOnScreen(t *testing.T) {
	c := mustNew(t)
	if got := c.WorldPointOnScreen(0); !got.Approx(cg.V2(150, 160), eps) {
		t.Errorf("WorldPointOnScreen(0) = %v, want (150, 160)", got)
	}
	f := c.Frustum()
	if got := c.WorldPointOnScreen(1); !got.Approx(f.NearRight, eps) {
		t.Errorf("WorldPointOnScreen(1) = %v, want %v", got, f.NearRight)
	}
	if got := c.WorldPointOnScreen(-1); !got.Approx(f.NearLeft, eps) {
		t.Errorf("WorldPointOnScreen(-1) = %v, want %v", got, f.NearLeft)
	}

	cos := math.Cos(c.Fovy() / 2)
	for s := -1.0; s <= 1.0; s += 0.125 {
		p, err := c.ProjectPoint(c.WorldPointOnScreen(s))
		if err != nil {
			t.Fatalf("ProjectPoint() error = %v", err)
		}
		if math.Abs(p.X-s*cos) > eps {
			t.Errorf("round trip of %v = %v, want %v", s, p.X, s*cos)
		}
		if math.Abs(p.X-s) > 1-cos+eps {
			t.Errorf("round trip of %v = %v, off by more than %v", s, p.X, 1-cos)
		}
		if math.Abs(p.Y+1) > eps {
			t.Errorf("round trip of %v has depth %v, want -1", s, p.Y)
		}
	}
}
