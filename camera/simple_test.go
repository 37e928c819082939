package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/cg"
)

var square = []cg.Vec2{cg.V2(100, 400), cg.V2(100, 500), cg.V2(200, 500), cg.V2(200, 400)}

func TestOrthogonalProject(t *testing.T) {
	for _, p := range square {
		if got := OrthogonalProject(p); got != p.X {
			t.Errorf("OrthogonalProject(%v) = %v, want %v", p, got, p.X)
		}
	}
}

func TestPerspectiveProject(t *testing.T) {
	eye := cg.V2(150, 10)
	const plane = 150.0

	tests := []struct {
		name string
		p    cg.Vec2
		want float64
	}{
		{"near left", cg.V2(100, 400), 150 - 50*140.0/390},
		{"far left", cg.V2(100, 500), 150 - 50*140.0/490},
		{"far right", cg.V2(200, 500), 150 + 50*140.0/490},
		{"on axis", cg.V2(150, 300), 150},
		{"on the plane", cg.V2(120, 150), 120},
		{"behind the eye", cg.V2(160, 0), 150 - 10*140.0/10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PerspectiveProject(eye, plane, tt.p)
			if err != nil {
				t.Fatalf("PerspectiveProject() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PerspectiveProject(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if _, err := PerspectiveProject(eye, plane, cg.V2(40, 10)); !errors.Is(err, cg.ErrZeroW) {
		t.Errorf("PerspectiveProject(depth 0) error = %v, want cg.ErrZeroW", err)
	}
}

func TestPerspectiveProjectShrinksWithDepth(t *testing.T) {
	eye := cg.V2(150, 10)
	near, _ := PerspectiveProject(eye, 150, cg.V2(200, 400))
	far, _ := PerspectiveProject(eye, 150, cg.V2(200, 500))
	if !(far-150 < near-150) {
		t.Errorf("far offset %v should be smaller than near offset %v", far-150, near-150)
	}
}
