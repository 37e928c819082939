package shading

import (
	"math"
	"testing"

	"github.com/gogpu/cg"
)

const eps = 1e-12

func TestPhong(t *testing.T) {
	green := cg.V3(0, 1, 0)
	diag := math.Sqrt2 / 2

	tests := []struct {
		name                 string
		point, n, eye, light cg.Vec2
		want                 cg.Vec3
	}{
		{
			name: "head on",
			point: cg.V2(0, 0), n: cg.V2(1, 0), eye: cg.V2(10, 0), light: cg.V2(10, 0),
			want: cg.V3(0.4, 1.0, 0.4),
		},
		{
			name: "light behind surface",
			point: cg.V2(270, 300), n: cg.V2(-1, 0), eye: cg.V2(40, 20), light: cg.V2(400, 300),
			want: cg.V3(0, 0.1, 0),
		},
		{
			name: "eye behind surface",
			point: cg.V2(0, 0), n: cg.V2(1, 0), eye: cg.V2(-10, 0), light: cg.V2(10, 0),
			want: cg.V3(0, 0.1, 0),
		},
		{
			name: "mirror direction",
			point: cg.V2(0, 0), n: cg.V2(0, 1), eye: cg.V2(-5, 5), light: cg.V2(5, 5),
			want: cg.V3(0.4, 0.1+0.5*diag+0.4, 0.4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Phong(tt.point, tt.n, tt.eye, tt.light, green, DefaultMaterial)
			if !s.Color.Approx(tt.want, 1e-9) {
				t.Errorf("Phong() color = %v, want %v", s.Color, tt.want)
			}
			if got := s.Ambient.Add(s.Diffuse).Add(s.Specular); !got.Approx(s.Color, eps) {
				t.Errorf("terms sum to %v, color is %v", got, s.Color)
			}
		})
	}
}

func TestPhongVectors(t *testing.T) {
	s := Phong(cg.V2(270, 150), cg.V2(-1, 0), DefaultEye, DefaultLight, DefaultAlbedo, DefaultMaterial)
	for name, v := range map[string]cg.Vec2{"view": s.View, "light": s.Light, "reflect": s.Reflect} {
		if math.Abs(v.Length()-1) > eps {
			t.Errorf("%s vector %v is not unit length", name, v)
		}
	}
	// The reflection mirrors the light vector about the normal.
	if got := s.Reflect.Add(s.Light).Mul(0.5); !got.Approx(s.Normal.Mul(s.Normal.Dot(s.Light)), eps) {
		t.Errorf("reflect %v is not the mirror of light %v", s.Reflect, s.Light)
	}
	if s.Normal.Dot(s.View) < 0 {
		t.Errorf("view %v should face the normal", s.View)
	}
	// Only the white highlight adds red and blue.
	if c := cg.FromVec3(s.Color); c.R != c.B {
		t.Errorf("green albedo produced %+v", c)
	}
}

func TestPhongZeroVectors(t *testing.T) {
	// Eye and light at the surface point normalize to zero instead of NaN.
	s := Phong(cg.V2(1, 1), cg.V2(0, 1), cg.V2(1, 1), cg.V2(1, 1), DefaultAlbedo, DefaultMaterial)
	if math.IsNaN(s.Color.Y) || !s.Color.Approx(cg.V3(0, 0.1, 0), eps) {
		t.Errorf("Phong() color = %v, want ambient only", s.Color)
	}
}

func TestSegmentNormal(t *testing.T) {
	tests := []struct {
		a, b cg.Vec2
		want cg.Vec2
	}{
		{cg.V2(0, 0), cg.V2(10, 0), cg.V2(0, 1)},
		{cg.V2(270, 0), cg.V2(270, 600), cg.V2(-1, 0)},
		{cg.V2(0, 0), cg.V2(3, 3), cg.V2(-math.Sqrt2/2, math.Sqrt2/2)},
		{cg.V2(5, 5), cg.V2(5, 5), cg.V2(0, 0)},
	}
	for _, tt := range tests {
		if got := SegmentNormal(tt.a, tt.b); !got.Approx(tt.want, eps) {
			t.Errorf("SegmentNormal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPolygonNormals(t *testing.T) {
	square := []cg.Vec2{cg.V2(0, 0), cg.V2(1, 0), cg.V2(1, 1), cg.V2(0, 1)}
	got := PolygonNormals(square)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	want := cg.V2(1, 1).Normalize()
	if !got[0].Approx(want, eps) {
		t.Errorf("normal[0] = %v, want %v", got[0], want)
	}
	for i, n := range got {
		if math.Abs(n.Length()-1) > eps {
			t.Errorf("normal[%d] = %v is not unit length", i, n)
		}
	}
	if n := PolygonNormals(nil); len(n) != 0 {
		t.Errorf("PolygonNormals(nil) = %v, want empty", n)
	}
}
